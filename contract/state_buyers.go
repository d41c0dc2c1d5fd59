package main

import (
	"strconv"

	"presale/sdk"
)

// -----------------------------------------------------------------------------
// Contribution Ledger
// -----------------------------------------------------------------------------

// contributionOf reads a buyer's cumulative token acquisitions, lazily zero.
func contributionOf(addr sdk.Address) int64 {
	ptr := sdk.StateGetObject(contributionKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt state: contribution")
	}
	return v
}

// setContribution stores the new cumulative total. Entries are never deleted
// and only ever grow until finalization.
func setContribution(addr sdk.Address, total int64) {
	sdk.StateSetObject(contributionKey(addr), strconv.FormatInt(total, 10))
}

// -----------------------------------------------------------------------------
// KYC Registry
// -----------------------------------------------------------------------------

// kycPassed returns the eligibility flag for an identity, defaulting to false.
func kycPassed(addr sdk.Address) bool {
	ptr := sdk.StateGetObject(kycKey(addr))
	return ptr != nil && *ptr == "1"
}

// setKycFlag stores the eligibility flag for an identity.
func setKycFlag(addr sdk.Address, passed bool) {
	sdk.StateSetObject(kycKey(addr), encodeBool(passed))
}
