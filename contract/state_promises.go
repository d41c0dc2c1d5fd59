package main

import (
	"strconv"
	"strings"

	"presale/sdk"
)

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// savePromise serializes one log entry.
// Format: status|updatedAt|text  (text last, it may contain pipes)
func savePromise(id uint64, e *PromiseEntry) {
	parts := []string{
		strconv.FormatUint(uint64(e.Status), 10),
		strconv.FormatInt(e.UpdatedAt, 10),
		e.Text,
	}
	sdk.StateSetObject(promiseKey(id), strings.Join(parts, "|"))
}

// loadPromise reads an entry back, second return false when the id is unknown.
func loadPromise(id uint64) (*PromiseEntry, bool) {
	ptr := sdk.StateGetObject(promiseKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	parts := strings.SplitN(*ptr, "|", 3)
	if len(parts) < 3 {
		sdk.Abort("corrupt state: promise")
	}
	return &PromiseEntry{
		Status:    PromiseStatus(parseI64(parts[0], "promise status")),
		UpdatedAt: parseI64(parts[1], "promise stamp"),
		Text:      parts[2],
	}, true
}
