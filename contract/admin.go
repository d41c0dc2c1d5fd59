package main

import "presale/sdk"

// -----------------------------------------------------------------------------
// Guards
// -----------------------------------------------------------------------------

// requireGovernance aborts unless the caller is the current governance holder
// and returns the caller for convenience.
func requireGovernance() sdk.Address {
	gov := loadGovernance()
	caller := getSenderAddress()
	if caller != gov.Current {
		sdk.Abort("caller is not governance holder")
	}
	return caller
}

// requireNotFinalized rejects mutation once the sale is settled.
func requireNotFinalized() {
	if loadSaleState().Finalized {
		sdk.Abort("sale finalized")
	}
}

// requireAdminUnlocked enforces the absolute-time gate most mutators sit
// behind. pause is deliberately exempt so emergency halts stay instant, while
// unpause and everything else waits for the unlock instant.
func requireAdminUnlocked(cfg *SaleConfig) {
	if nowUnix() < cfg.AdminUnlockAt {
		sdk.Abort("admin functions time-locked")
	}
}

// gatedMutator is the guard combinator for the standard config path:
// initialized, governance caller, not finalized, time gate passed.
func gatedMutator() *SaleConfig {
	requireInitialized()
	requireGovernance()
	requireNotFinalized()
	cfg := loadSaleConfig()
	requireAdminUnlocked(cfg)
	return cfg
}

// -----------------------------------------------------------------------------
// Config Mutators
// -----------------------------------------------------------------------------

// SetTimes moves the sale window. Payload: {"start":...,"end":...}
//
//go:wasmexport set_times
func SetTimes(payload *string) *string {
	cfg := gatedMutator()
	args := decodeSetTimesArgs(payload)
	if args.EndAt <= args.StartAt {
		sdk.Abort("sale end must be after start")
	}
	cfg.StartAt = args.StartAt
	cfg.EndAt = args.EndAt
	saveSaleConfig(cfg)
	emitTimesUpdated(cfg.StartAt, cfg.EndAt)
	return strptr("times updated")
}

// SetRates updates the per-channel pricing, zero disables a channel.
// Payload: {"rateStable":...,"rateNative":...}
//
//go:wasmexport set_rates
func SetRates(payload *string) *string {
	cfg := gatedMutator()
	args := decodeSetRatesArgs(payload)
	if args.RateStable < 0 || args.RateNative < 0 {
		sdk.Abort("rates must not be negative")
	}
	cfg.RateStable = args.RateStable
	cfg.RateNative = args.RateNative
	saveSaleConfig(cfg)
	emitRatesUpdated(cfg.RateStable, cfg.RateNative)
	return strptr("rates updated")
}

// SetBuyerMax adjusts the per-identity ceiling. The hard cap itself is
// immutable. Payload: the new ceiling as a JSON number.
//
//go:wasmexport set_buyer_max
func SetBuyerMax(payload *string) *string {
	gatedMutator()
	max := decodeInt(payload, "buyer max")
	caps := loadCaps()
	if max <= 0 || max > caps.HardCap {
		sdk.Abort("buyer max must be positive and within hard cap")
	}
	caps.BuyerMax = max
	saveCaps(caps)
	emitBuyerMaxUpdated(max)
	return strptr("buyer max updated")
}

// SetReserveSplit adjusts the reserve share of proceeds in basis points.
// Payload: the split as a JSON number. Does not touch the cool-down stamp,
// only re-pointing the destinations does.
//
//go:wasmexport set_reserve_split
func SetReserveSplit(payload *string) *string {
	gatedMutator()
	bps := decodeInt(payload, "reserve split")
	if bps < 0 || bps > BpsDenom {
		sdk.Abort("reserve split out of range")
	}
	v := loadVaults()
	v.ReserveSplitBps = bps
	saveVaults(v)
	emitReserveSplitUpdated(bps)
	return strptr("reserve split updated")
}

// SetVaults points the two payout destinations and stamps the cool-down.
// Payload: {"reserve":"hive:...","ops":"hive:..."}
//
//go:wasmexport set_vaults
func SetVaults(payload *string) *string {
	gatedMutator()
	args := decodeSetVaultsArgs(payload)
	reserve := AddressFromString(args.Reserve)
	ops := AddressFromString(args.Ops)
	if !reserve.IsValid() || !ops.IsValid() {
		sdk.Abort("invalid vault address")
	}
	v := loadVaults()
	v.Reserve = reserve
	v.Ops = ops
	v.LastSetAt = nowUnix()
	saveVaults(v)
	emitVaultsUpdated(reserve.String(), ops.String())
	return strptr("vaults updated")
}

// SetKyc flips one identity's eligibility flag.
// Payload: {"account":"hive:...","passed":true}
//
//go:wasmexport set_kyc
func SetKyc(payload *string) *string {
	gatedMutator()
	args := decodeSetKycArgs(payload)
	account := AddressFromString(args.Account)
	if !account.IsValid() {
		sdk.Abort("invalid account address")
	}
	setKycFlag(account, args.Passed)
	emitKycStatusUpdated(account.String(), args.Passed)
	return strptr("kyc updated")
}

// SetKycRequired toggles the registry check for open rounds.
// Payload: a JSON bool.
//
//go:wasmexport set_kyc_required
func SetKycRequired(payload *string) *string {
	cfg := gatedMutator()
	required := decodeBool(payload, "kyc required")
	cfg.KycRequired = required
	saveSaleConfig(cfg)
	emitKycRequiredUpdated(required)
	return strptr("kyc requirement updated")
}

// SetUnsoldPolicy decides leftover-supply disposal ahead of finalization.
// Payload: {"burn":true} or {"recipient":"hive:..."}
//
//go:wasmexport set_unsold_policy
func SetUnsoldPolicy(payload *string) *string {
	gatedMutator()
	args := decodeSetUnsoldPolicyArgs(payload)
	if args.Burn && args.Recipient != "" {
		sdk.Abort("burn and recipient are mutually exclusive")
	}
	recipient := AddressFromString(args.Recipient)
	if args.Recipient != "" && !recipient.IsValid() {
		sdk.Abort("invalid unsold recipient")
	}
	saveUnsoldPolicy(&UnsoldPolicy{Burn: args.Burn, Recipient: recipient})
	emitUnsoldPolicyUpdated(args.Burn, args.Recipient)
	return strptr("unsold policy updated")
}

// SetExpectation adjusts the finalization proceeds guard.
// Payload: {"expectedTotal":...,"toleranceBps":...}
//
//go:wasmexport set_expectation
func SetExpectation(payload *string) *string {
	gatedMutator()
	args := decodeSetExpectationArgs(payload)
	if args.ExpectedTotal < 0 {
		sdk.Abort("expected total must not be negative")
	}
	if args.ToleranceBps < 0 || args.ToleranceBps > BpsDenom {
		sdk.Abort("tolerance out of range")
	}
	saveExpectation(&ExpectationConfig{ExpectedTotal: args.ExpectedTotal, ToleranceBps: args.ToleranceBps})
	emitExpectationUpdated(args.ExpectedTotal, args.ToleranceBps)
	return strptr("expectation updated")
}

// -----------------------------------------------------------------------------
// Pause / Unpause
// -----------------------------------------------------------------------------

// Pause halts purchases immediately. It skips the admin time gate on purpose:
// an emergency stop that waits for an unlock date is not an emergency stop.
//
//go:wasmexport pause
func Pause(_ *string) *string {
	requireInitialized()
	requireGovernance()
	requireNotFinalized()
	cfg := loadSaleConfig()
	cfg.Paused = true
	saveSaleConfig(cfg)
	emitPauseToggled(true)
	return strptr("paused")
}

// Unpause resumes purchases and does honour the time gate, unlike Pause.
//
//go:wasmexport unpause
func Unpause(_ *string) *string {
	cfg := gatedMutator()
	cfg.Paused = false
	saveSaleConfig(cfg)
	emitPauseToggled(false)
	return strptr("unpaused")
}
