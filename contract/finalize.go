package main

import "presale/sdk"

// Finalize settles the sale exactly once: proceeds guard, bps split per asset,
// unsold-supply disposal, terminal flag. The host rolls the whole call back if
// any transfer in here fails, so the settlement is all-or-nothing.
// Payload (optional): {"unsoldRecipient":"hive:..."} overriding the configured
// disposal recipient.
//
//go:wasmexport finalize
func Finalize(payload *string) *string {
	acquireEntry()
	defer releaseEntry()

	requireInitialized()
	requireGovernance()
	st := loadSaleState()
	if st.Finalized {
		sdk.Abort("sale already finalized")
	}
	cfg := loadSaleConfig()
	now := nowUnix()
	if now <= cfg.EndAt {
		sdk.Abort("sale window still open")
	}
	vaults := loadVaults()
	if vaults.Reserve == "" || vaults.Ops == "" {
		sdk.Abort("payout destinations not configured")
	}
	if now < vaults.LastSetAt+FinalizeCooldownSecs {
		sdk.Abort("vault cool-down active")
	}

	self := contractAddress()
	stableBal := Amount(sdk.GetBalance(self, sdk.AssetHbd))
	nativeBal := Amount(sdk.GetBalance(self, sdk.AssetHive))

	// Proceeds guard: everything held, normalized to canonical precision,
	// must reach the expected total minus tolerance.
	exp := loadExpectation()
	held := normalizeAmount(AmountToInt64(stableBal), HiveLayerDecimals, CanonicalDecimals) +
		normalizeAmount(AmountToInt64(nativeBal), HiveLayerDecimals, CanonicalDecimals)
	floor := mulDiv(exp.ExpectedTotal, BpsDenom-exp.ToleranceBps, BpsDenom)
	if held < floor {
		sdk.Abort("proceeds below expected tolerance")
	}

	// Terminal flag flips before any asset moves so a re-entered export sees
	// the sale as closed.
	st.Finalized = true
	saveSaleState(st)

	reserveStable := Amount(mulDiv(AmountToInt64(stableBal), vaults.ReserveSplitBps, BpsDenom))
	opsStable := stableBal - reserveStable
	reserveNative := Amount(mulDiv(AmountToInt64(nativeBal), vaults.ReserveSplitBps, BpsDenom))
	opsNative := nativeBal - reserveNative

	payOut(vaults.Reserve, reserveStable, sdk.AssetHbd)
	payOut(vaults.Ops, opsStable, sdk.AssetHbd)
	payOut(vaults.Reserve, reserveNative, sdk.AssetHive)
	payOut(vaults.Ops, opsNative, sdk.AssetHive)

	disposeUnsold(cfg, decodeFinalizeArgs(payload).UnsoldRecipient)

	emitSaleClosed(st.Sold, st.StableRaised, st.NativeRaised, now)
	emitFinalized(st.Sold, st.StableRaised, st.NativeRaised,
		reserveStable, reserveNative, opsStable, opsNative)

	return strptr("sale finalized")
}

// payOut skips zero-amount legs instead of attempting them.
func payOut(to sdk.Address, amount Amount, asset sdk.Asset) {
	if amount == 0 {
		return
	}
	sdk.HiveTransfer(to, AmountToInt64(amount), asset)
}

// disposeUnsold drains leftover supply by precedence: burn, call-time
// override, configured default. Leftover tokens with no policy at all are a
// configuration error, not something to strand silently.
func disposeUnsold(cfg *SaleConfig, override string) {
	unsold := tokenBalanceOf(cfg, contractAddress())
	if unsold == 0 {
		return
	}
	policy := loadUnsoldPolicy()
	switch {
	case policy.Burn:
		tokenBurn(cfg, unsold)
		emitUnsoldBurned(unsold)
	case override != "":
		recipient := AddressFromString(override)
		if !recipient.IsValid() {
			sdk.Abort("invalid unsold recipient")
		}
		tokenTransfer(cfg, recipient, unsold)
		emitUnsoldTransferred(recipient.String(), unsold)
	case policy.Recipient != "":
		tokenTransfer(cfg, policy.Recipient, unsold)
		emitUnsoldTransferred(policy.Recipient.String(), unsold)
	default:
		sdk.Abort("unsold policy not configured")
	}
}

// SweepDust moves post-settlement residue (split remainders or late arrivals)
// of both payment assets to the ops destination. Only meaningful after
// finalization and rejected when there is nothing to sweep.
//
//go:wasmexport sweep_dust
func SweepDust(_ *string) *string {
	acquireEntry()
	defer releaseEntry()

	requireInitialized()
	requireGovernance()
	st := loadSaleState()
	if !st.Finalized {
		sdk.Abort("sale not finalized")
	}

	self := contractAddress()
	stableBal := Amount(sdk.GetBalance(self, sdk.AssetHbd))
	nativeBal := Amount(sdk.GetBalance(self, sdk.AssetHive))
	if stableBal == 0 && nativeBal == 0 {
		sdk.Abort("no dust to sweep")
	}

	vaults := loadVaults()
	payOut(vaults.Ops, stableBal, sdk.AssetHbd)
	payOut(vaults.Ops, nativeBal, sdk.AssetHive)

	emitDustSwept(vaults.Ops.String(), stableBal, nativeBal)
	return strptr("dust swept")
}
