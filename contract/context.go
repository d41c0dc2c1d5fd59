package main

import (
	"strconv"
	"time"

	"presale/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized data
// to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines and ensures subsequent helper calls (intents, sender, timestamps)
// always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress returns the address the hive ledger books escrowed funds under.
func contractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// nowUnix resolves ledger time from the block timestamp. The chain reports
// either integer seconds or a wall-clock string, never nothing.
func nowUnix() int64 {
	ts := currentEnv().Timestamp
	if ts == "" {
		if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil {
			ts = *tsPtr
		}
	}
	if v, err := strconv.ParseInt(ts, 10, 64); err == nil {
		return v
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		return t.Unix()
	}
	sdk.Abort("missing block timestamp")
	return 0
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit float64
	Token sdk.Asset
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// getFirstTransferAllow scans the provided intents and returns the first valid
// transfer.allow intent as a TransferAllow object. The cached result is cleared
// automatically whenever currentEnv() detects a new transaction.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !isValidAsset(token) {
				sdk.Abort("invalid intent asset")
			}
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseFloat(limitStr, 64)
			if err != nil {
				sdk.Abort("invalid intent limit")
			}
			ta := &TransferAllow{
				Limit: limit,
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}

// entryGuard is the mutual-exclusion flag held for the duration of any
// operation that moves assets. A cross-contract token call hands control to
// foreign code, which must not be able to re-enter an export mid-flight.
var entryGuard bool

// acquireEntry aborts on re-entry; pair with defer releaseEntry().
func acquireEntry() {
	if entryGuard {
		sdk.Abort("reentrant call")
	}
	entryGuard = true
}

func releaseEntry() {
	entryGuard = false
}
