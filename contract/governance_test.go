package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale/sdk"
)

func proposeCandidate(candidate string) *string {
	payload := `"` + candidate + `"`
	return GovPropose(&payload)
}

func TestGovernanceHandover(t *testing.T) {
	initSale(t, defaultParams())

	res := proposeCandidate("hive:alice")
	require.Equal(t, "nomination pending", *res)

	gov := loadGovernance()
	assert.Equal(t, sdk.Address(govAccount), gov.Current)
	assert.Equal(t, sdk.Address("hive:alice"), gov.Pending)

	sdk.Host.SetSender("hive:alice")
	res = GovAccept(nil)
	require.Equal(t, "governance transferred", *res)

	gov = loadGovernance()
	assert.Equal(t, sdk.Address("hive:alice"), gov.Current)
	assert.Equal(t, sdk.Address(""), gov.Pending)

	// The old holder lost its powers with the hand-over.
	asGov()
	expectAbort(t, "caller is not governance holder", func() {
		payload := `{"rateStable":10,"rateNative":10}`
		SetRates(&payload)
	})
}

func TestGovernanceProposeRejectsNonHolder(t *testing.T) {
	initSale(t, defaultParams())
	sdk.Host.SetSender("hive:mallory")
	expectAbort(t, "caller is not governance holder", func() {
		proposeCandidate("hive:mallory")
	})
}

func TestGovernanceProposeRejectsSelf(t *testing.T) {
	initSale(t, defaultParams())
	expectAbort(t, "candidate already holds governance", func() {
		proposeCandidate(govAccount)
	})
}

func TestGovernanceProposeRejectsInvalidAddress(t *testing.T) {
	initSale(t, defaultParams())
	expectAbort(t, "invalid candidate address", func() {
		proposeCandidate("not-an-address")
	})
}

func TestGovernanceSinglePendingSlot(t *testing.T) {
	initSale(t, defaultParams())
	proposeCandidate("hive:alice")
	asGov()
	expectAbort(t, "nomination already pending", func() {
		proposeCandidate("hive:bob")
	})
}

func TestGovernanceAcceptRequiresNominee(t *testing.T) {
	initSale(t, defaultParams())
	proposeCandidate("hive:alice")

	sdk.Host.SetSender("hive:bob")
	expectAbort(t, "caller is not the nominated candidate", func() {
		GovAccept(nil)
	})

	// The sitting holder cannot accept on the nominee's behalf either.
	asGov()
	expectAbort(t, "caller is not the nominated candidate", func() {
		GovAccept(nil)
	})
}

func TestGovernanceCancelClearsNomination(t *testing.T) {
	initSale(t, defaultParams())
	proposeCandidate("hive:alice")

	asGov()
	res := GovCancel(nil)
	require.Equal(t, "nomination cancelled", *res)
	assert.Equal(t, sdk.Address(""), loadGovernance().Pending)

	sdk.Host.SetSender("hive:alice")
	expectAbort(t, "no pending nomination", func() {
		GovAccept(nil)
	})
}

func TestGovernanceCancelWithoutNomination(t *testing.T) {
	initSale(t, defaultParams())
	expectAbort(t, "no pending nomination", func() {
		GovCancel(nil)
	})
}

func TestGovernanceViewReflectsState(t *testing.T) {
	initSale(t, defaultParams())
	proposeCandidate("hive:alice")
	asGov()

	view := GetGovernance(nil)
	require.NotNil(t, view)
	assert.Contains(t, *view, `"current":"hive:gov"`)
	assert.Contains(t, *view, `"pending":"hive:alice"`)
}
