package main

import (
	"strconv"

	"presale/sdk"
)

// The promise registry is an append-only transparency log the team writes
// against itself: entries are never deleted, only their status moves. New
// entries stop at finalization; existing entries stay resolvable so
// commitments made for the post-sale phase can still close out.

// PromiseAdd appends a new entry in pending state and returns its id.
// Payload: the promise text as a JSON string.
//
//go:wasmexport promise_add
func PromiseAdd(payload *string) *string {
	requireInitialized()
	requireGovernance()
	requireNotFinalized()
	requireAdminUnlocked(loadSaleConfig())

	text := decodeString(payload, "promise")
	if text == "" {
		sdk.Abort("promise text required")
	}
	if len(text) > MaxPromiseTextLength {
		sdk.Abort("promise text too long")
	}

	id := getCount(PromisesCount)
	savePromise(id, &PromiseEntry{
		Text:      text,
		Status:    PromisePending,
		UpdatedAt: nowUnix(),
	})
	setCount(PromisesCount, id+1)

	emitPromiseRecorded(id)
	return strptr(strconv.FormatUint(id, 10))
}

// PromiseSetStatus resolves an entry to kept or broken (or back to pending).
// Re-asserting the current status is rejected so every update is a real
// transition. Payload: {"id":0,"status":"kept"}
//
//go:wasmexport promise_set_status
func PromiseSetStatus(payload *string) *string {
	requireInitialized()
	requireGovernance()
	requireAdminUnlocked(loadSaleConfig())

	args := decodePromiseStatusArgs(payload)
	status, ok := parsePromiseStatus(args.Status)
	if !ok {
		sdk.Abort("unknown promise status")
	}

	entry, found := loadPromise(args.ID)
	if !found {
		sdk.Abort("unknown promise id")
	}
	if entry.Status == status {
		sdk.Abort("promise already in that status")
	}

	entry.Status = status
	entry.UpdatedAt = nowUnix()
	savePromise(args.ID, entry)

	emitPromiseStatusUpdated(args.ID, status)
	return strptr("promise updated")
}
