package main

import "presale/sdk"

// Two-step succession: a single pending slot, one entry path (propose) and two
// exit paths (accept by the nominee, cancel by the holder). No self-succession
// and no queue of candidates.

// GovPropose nominates a successor. Payload: the candidate address as a JSON
// string.
//
//go:wasmexport gov_propose
func GovPropose(payload *string) *string {
	requireInitialized()
	requireNotFinalized()
	gov := loadGovernance()
	caller := getSenderAddress()
	if caller != gov.Current {
		sdk.Abort("caller is not governance holder")
	}

	candidate := AddressFromString(decodeString(payload, "candidate"))
	if !candidate.IsValid() {
		sdk.Abort("invalid candidate address")
	}
	if candidate == gov.Current {
		sdk.Abort("candidate already holds governance")
	}
	if gov.Pending != "" {
		sdk.Abort("nomination already pending")
	}

	gov.Pending = candidate
	saveGovernance(gov)
	emitGovTransferStarted(gov.Current.String(), candidate.String())
	return strptr("nomination pending")
}

// GovCancel clears the pending nomination, only the current holder may do so.
//
//go:wasmexport gov_cancel
func GovCancel(_ *string) *string {
	requireInitialized()
	requireNotFinalized()
	gov := loadGovernance()
	caller := getSenderAddress()
	if caller != gov.Current {
		sdk.Abort("caller is not governance holder")
	}
	if gov.Pending == "" {
		sdk.Abort("no pending nomination")
	}

	cancelled := gov.Pending
	gov.Pending = ""
	saveGovernance(gov)
	emitGovTransferCancelled(gov.Current.String(), cancelled.String())
	return strptr("nomination cancelled")
}

// GovAccept completes the hand-over, callable only by the nominee.
//
//go:wasmexport gov_accept
func GovAccept(_ *string) *string {
	requireInitialized()
	requireNotFinalized()
	gov := loadGovernance()
	if gov.Pending == "" {
		sdk.Abort("no pending nomination")
	}
	caller := getSenderAddress()
	if caller != gov.Pending {
		sdk.Abort("caller is not the nominated candidate")
	}

	previous := gov.Current
	gov.Current = gov.Pending
	gov.Pending = ""
	saveGovernance(gov)
	emitGovTransferred(previous.String(), gov.Current.String())
	return strptr("governance transferred")
}
