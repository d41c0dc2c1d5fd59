package main

import "presale/sdk"

// Both payment channels share one execution path; only the asset, the rate and
// the raised-total bucket differ. Checks run strictly before effects, the
// first failure wins, and the entry guard covers the whole call because the
// token hand-off crosses into foreign contract code.

// BuyStable purchases with the stable-value asset (hbd).
// Payload: {"amount": 12.5} in whole hbd. Requires a matching transfer.allow
// intent.
//
//go:wasmexport buy_stable
func BuyStable(payload *string) *string {
	return executePurchase(payload, sdk.AssetHbd)
}

// BuyNative purchases with the native network asset (hive).
// Payload: {"amount": 12.5} in whole hive.
//
//go:wasmexport buy_native
func BuyNative(payload *string) *string {
	return executePurchase(payload, sdk.AssetHive)
}

func executePurchase(payload *string, asset sdk.Asset) *string {
	acquireEntry()
	defer releaseEntry()

	requireInitialized()
	cfg := loadSaleConfig()
	st := loadSaleState()

	if st.Finalized {
		sdk.Abort("sale finalized")
	}
	if cfg.Paused {
		sdk.Abort("sale paused")
	}
	now := nowUnix()
	if now < cfg.StartAt || now > cfg.EndAt {
		sdk.Abort("outside sale window")
	}

	args := decodeBuyArgs(payload)
	amount := FloatToAmount(args.Amount)
	if amount <= 0 {
		sdk.Abort("amount must be positive")
	}

	rate := cfg.RateStable
	if asset == sdk.AssetHive {
		rate = cfg.RateNative
		if rate == 0 {
			sdk.Abort("native channel disabled")
		}
	}

	buyer := getSenderAddress()
	if cfg.KycRequired && !kycPassed(buyer) {
		sdk.Abort("kyc check failed")
	}

	// tokensOut = floor(amount * rate / paymentUnitScale)
	tokensOut := mulDiv(AmountToInt64(amount), rate, AmountScale)
	if tokensOut == 0 {
		sdk.Abort("amount below minimum token unit")
	}

	caps := loadCaps()
	if st.Sold+tokensOut > caps.HardCap {
		sdk.Abort("hard cap exceeded")
	}
	contribution := contributionOf(buyer)
	if contribution+tokensOut > caps.BuyerMax {
		sdk.Abort("buyer cap exceeded")
	}

	// Payment must be covered by a signed transfer.allow intent before the
	// draw, the same flow the host enforces on-chain.
	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != asset {
		sdk.Abort("missing transfer.allow intent")
	}
	if FloatToAmount(ta.Limit) < amount {
		sdk.Abort("intent limit below amount")
	}

	// External movements first, then ledger state, then events.
	sdk.HiveDraw(AmountToInt64(amount), asset)
	tokenTransfer(cfg, buyer, tokensOut)

	setContribution(buyer, contribution+tokensOut)
	st.Sold += tokensOut
	if asset == sdk.AssetHbd {
		st.StableRaised += amount
	} else {
		st.NativeRaised += amount
	}
	saveSaleState(st)

	emitPurchase(buyer.String(), asset, amount, tokensOut, rate)
	if st.Sold == caps.HardCap {
		emitHardCapReached(st.Sold)
	}

	return strptr("purchase complete")
}
