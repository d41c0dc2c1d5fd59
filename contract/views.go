package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"presale/sdk"
)

// Read-only accessors. Each returns a JSON blob built with the tinyjson writer,
// no state is touched. Amounts come back as the same whole-unit floats the
// purchase payloads use.

// buildView flushes the writer into the returned payload string.
func buildView(out *jwriter.Writer) *string {
	buf, err := out.BuildBytes()
	if err != nil {
		sdk.Abort("view encoding failed")
	}
	return strptr(string(buf))
}

// GetState reports the live accounting totals and the two halt flags.
//
//go:wasmexport get_state
func GetState(_ *string) *string {
	requireInitialized()
	st := loadSaleState()
	cfg := loadSaleConfig()

	out := &jwriter.Writer{}
	out.RawString(`{"sold":`)
	out.Int64(st.Sold)
	out.RawString(`,"stableRaised":`)
	out.RawString(strconv.FormatFloat(AmountToFloat(st.StableRaised), 'f', -1, 64))
	out.RawString(`,"nativeRaised":`)
	out.RawString(strconv.FormatFloat(AmountToFloat(st.NativeRaised), 'f', -1, 64))
	out.RawString(`,"finalized":`)
	out.Bool(st.Finalized)
	out.RawString(`,"paused":`)
	out.Bool(cfg.Paused)
	out.RawByte('}')
	return buildView(out)
}

// GetConfig reports the sale parameters including both caps.
//
//go:wasmexport get_config
func GetConfig(_ *string) *string {
	requireInitialized()
	cfg := loadSaleConfig()
	caps := loadCaps()
	exp := loadExpectation()

	out := &jwriter.Writer{}
	out.RawString(`{"tokenContract":`)
	out.String(cfg.TokenContract)
	out.RawString(`,"tokenDecimals":`)
	out.Uint8(cfg.TokenDecimals)
	out.RawString(`,"start":`)
	out.Int64(cfg.StartAt)
	out.RawString(`,"end":`)
	out.Int64(cfg.EndAt)
	out.RawString(`,"rateStable":`)
	out.Int64(cfg.RateStable)
	out.RawString(`,"rateNative":`)
	out.Int64(cfg.RateNative)
	out.RawString(`,"kycRequired":`)
	out.Bool(cfg.KycRequired)
	out.RawString(`,"adminUnlockAt":`)
	out.Int64(cfg.AdminUnlockAt)
	out.RawString(`,"hardCap":`)
	out.Int64(caps.HardCap)
	out.RawString(`,"buyerMax":`)
	out.Int64(caps.BuyerMax)
	out.RawString(`,"expectedTotal":`)
	out.Int64(exp.ExpectedTotal)
	out.RawString(`,"toleranceBps":`)
	out.Int64(exp.ToleranceBps)
	out.RawByte('}')
	return buildView(out)
}

// GetVaults reports the payout destinations, split and cool-down stamp.
//
//go:wasmexport get_vaults
func GetVaults(_ *string) *string {
	requireInitialized()
	v := loadVaults()

	out := &jwriter.Writer{}
	out.RawString(`{"reserve":`)
	out.String(v.Reserve.String())
	out.RawString(`,"ops":`)
	out.String(v.Ops.String())
	out.RawString(`,"reserveSplitBps":`)
	out.Int64(v.ReserveSplitBps)
	out.RawString(`,"lastSetAt":`)
	out.Int64(v.LastSetAt)
	out.RawByte('}')
	return buildView(out)
}

// GetGovernance reports the current holder and a pending nominee if any.
//
//go:wasmexport get_governance
func GetGovernance(_ *string) *string {
	requireInitialized()
	gov := loadGovernance()

	out := &jwriter.Writer{}
	out.RawString(`{"current":`)
	out.String(gov.Current.String())
	out.RawString(`,"pending":`)
	out.String(gov.Pending.String())
	out.RawByte('}')
	return buildView(out)
}

// GetContribution reports one buyer's cumulative token acquisition.
// Payload: the buyer address as a JSON string.
//
//go:wasmexport get_contribution
func GetContribution(payload *string) *string {
	requireInitialized()
	addr := AddressFromString(decodeString(payload, "contribution"))
	return strptr(strconv.FormatInt(contributionOf(addr), 10))
}

// GetKyc reports one identity's eligibility flag.
// Payload: the account address as a JSON string.
//
//go:wasmexport get_kyc
func GetKyc(payload *string) *string {
	requireInitialized()
	addr := AddressFromString(decodeString(payload, "kyc"))
	return strptr(strconv.FormatBool(kycPassed(addr)))
}

// GetPromise reports one registry entry. Payload: the id as a JSON number.
//
//go:wasmexport get_promise
func GetPromise(payload *string) *string {
	requireInitialized()
	id := decodeUint(payload, "promise")
	entry, found := loadPromise(id)
	if !found {
		sdk.Abort("unknown promise id")
	}

	out := &jwriter.Writer{}
	out.RawString(`{"id":`)
	out.Uint64(id)
	out.RawString(`,"text":`)
	out.String(entry.Text)
	out.RawString(`,"status":`)
	out.String(entry.Status.String())
	out.RawString(`,"updatedAt":`)
	out.Int64(entry.UpdatedAt)
	out.RawByte('}')
	return buildView(out)
}

// GetPromiseCount reports how many entries the registry holds.
//
//go:wasmexport get_promise_count
func GetPromiseCount(_ *string) *string {
	requireInitialized()
	return strptr(strconv.FormatUint(getCount(PromisesCount), 10))
}
