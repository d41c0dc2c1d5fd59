package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale/sdk"
)

func addPromise(text string) *string {
	payload := `"` + text + `"`
	return PromiseAdd(&payload)
}

func TestPromiseAddAssignsSequentialIds(t *testing.T) {
	initSale(t, defaultParams())

	res := addPromise("ship the wallet integration")
	require.Equal(t, "0", *res)
	res = addPromise("publish the audit report")
	require.Equal(t, "1", *res)

	count := GetPromiseCount(nil)
	assert.Equal(t, "2", *count)

	entry, found := loadPromise(0)
	require.True(t, found)
	assert.Equal(t, "ship the wallet integration", entry.Text)
	assert.Equal(t, PromisePending, entry.Status)
	assert.Equal(t, int64(500), entry.UpdatedAt)
}

func TestPromiseAddValidation(t *testing.T) {
	initSale(t, defaultParams())

	expectAbort(t, "promise text required", func() { addPromise("") })
	expectAbort(t, "promise text too long", func() {
		addPromise(strings.Repeat("x", MaxPromiseTextLength+1))
	})

	sdk.Host.SetSender("hive:mallory")
	expectAbort(t, "caller is not governance holder", func() {
		addPromise("not yours to promise")
	})
}

func TestPromiseStatusTransitions(t *testing.T) {
	initSale(t, defaultParams())
	addPromise("ship the wallet integration")

	sdk.Host.SetTimestamp(900)
	payload := `{"id":0,"status":"kept"}`
	res := PromiseSetStatus(&payload)
	require.Equal(t, "promise updated", *res)

	entry, _ := loadPromise(0)
	assert.Equal(t, PromiseKept, entry.Status)
	assert.Equal(t, int64(900), entry.UpdatedAt)

	// Re-asserting the current status is not a transition.
	expectAbort(t, "promise already in that status", func() {
		PromiseSetStatus(&payload)
	})

	// Back to pending and over to broken are both real transitions.
	back := `{"id":0,"status":"pending"}`
	PromiseSetStatus(&back)
	broken := `{"id":0,"status":"broken"}`
	PromiseSetStatus(&broken)
	entry, _ = loadPromise(0)
	assert.Equal(t, PromiseBroken, entry.Status)
}

func TestPromiseStatusValidation(t *testing.T) {
	initSale(t, defaultParams())
	addPromise("ship the wallet integration")

	expectAbort(t, "unknown promise status", func() {
		payload := `{"id":0,"status":"maybe"}`
		PromiseSetStatus(&payload)
	})
	expectAbort(t, "unknown promise id", func() {
		payload := `{"id":42,"status":"kept"}`
		PromiseSetStatus(&payload)
	})
}

func TestPromiseRegistryAfterFinalization(t *testing.T) {
	initSale(t, defaultParams())
	addPromise("publish the audit report")
	afterCooldown()
	Finalize(nil)

	// Existing commitments stay resolvable after settlement, but the log
	// accepts no new entries.
	payload := `{"id":0,"status":"kept"}`
	require.NotNil(t, PromiseSetStatus(&payload))
	entry, _ := loadPromise(0)
	assert.Equal(t, PromiseKept, entry.Status)

	expectAbort(t, "sale finalized", func() {
		addPromise("list on the first exchange")
	})
	count := GetPromiseCount(nil)
	assert.Equal(t, "1", *count)
}

func TestPromiseOpsHonourTimeLock(t *testing.T) {
	p := defaultParams()
	p.adminUnlockAt = 4000
	p.skipVaults = true
	initSale(t, p)

	expectAbort(t, "admin functions time-locked", func() {
		addPromise("too early to promise")
	})

	sdk.Host.SetTimestamp(4000)
	require.NotNil(t, addPromise("right on time"))
}

func TestPromiseView(t *testing.T) {
	initSale(t, defaultParams())
	addPromise("ship the wallet integration")

	payload := `0`
	view := GetPromise(&payload)
	require.NotNil(t, view)
	assert.Contains(t, *view, `"text":"ship the wallet integration"`)
	assert.Contains(t, *view, `"status":"pending"`)

	expectAbort(t, "unknown promise id", func() {
		missing := `5`
		GetPromise(&missing)
	})
}
