////////////////////////////////////////////////////////////////////////////////
// Presale: token-sale accounting and governance gating for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "presale/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the sale with the caller as governance holder.
// Must be called before any other function. Payload carries the full sale
// configuration: token contract, window, rates, caps, expectation and the
// admin unlock instant.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	args := decodeInitArgs(payload)

	if args.TokenContract == "" {
		sdk.Abort("token contract required")
	}
	if args.TokenDecimals > MaxTokenDecimals {
		sdk.Abort("token decimals out of range")
	}
	if args.EndAt <= args.StartAt {
		sdk.Abort("sale end must be after start")
	}
	if args.RateStable < 0 || args.RateNative < 0 {
		sdk.Abort("rates must not be negative")
	}
	if args.HardCap <= 0 {
		sdk.Abort("hard cap must be positive")
	}
	if args.BuyerMax <= 0 || args.BuyerMax > args.HardCap {
		sdk.Abort("buyer max must be positive and within hard cap")
	}
	if args.ExpectedTotal < 0 {
		sdk.Abort("expected total must not be negative")
	}
	if args.ToleranceBps < 0 || args.ToleranceBps > BpsDenom {
		sdk.Abort("tolerance out of range")
	}
	if args.BurnUnsold && args.UnsoldRecipient != "" {
		sdk.Abort("burn and recipient are mutually exclusive")
	}
	if args.UnsoldRecipient != "" && !AddressFromString(args.UnsoldRecipient).IsValid() {
		sdk.Abort("invalid unsold recipient")
	}

	owner := getSenderAddress()

	saveSaleConfig(&SaleConfig{
		TokenContract: args.TokenContract,
		TokenDecimals: args.TokenDecimals,
		StartAt:       args.StartAt,
		EndAt:         args.EndAt,
		RateStable:    args.RateStable,
		RateNative:    args.RateNative,
		KycRequired:   args.KycRequired,
		AdminUnlockAt: args.AdminUnlockAt,
	})
	saveCaps(&CapsConfig{HardCap: args.HardCap, BuyerMax: args.BuyerMax})
	saveExpectation(&ExpectationConfig{ExpectedTotal: args.ExpectedTotal, ToleranceBps: args.ToleranceBps})
	saveSaleState(&SaleState{})
	saveUnsoldPolicy(&UnsoldPolicy{Burn: args.BurnUnsold, Recipient: AddressFromString(args.UnsoldRecipient)})
	saveGovernance(&GovernanceState{Current: owner})

	emitInitEvent(owner.String(), args.TokenContract)

	return strptr("initialized")
}
