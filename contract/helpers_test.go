package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"presale/sdk"
)

// Shared fixtures: a fresh mock host per test, a scripted token-ledger contract
// behind the cross-contract call surface, and a tiny driver for purchases.

const (
	govAccount    = "hive:gov"
	tokenContract = "contract:token"
	escrowAccount = "contract:presale"
)

// resetContract swaps in a fresh host and clears the per-tx caches the
// contract package keeps between calls.
func resetContract() {
	sdk.MockReset()
	cachedEnvLoaded = false
	cachedTransfer = nil
	entryGuard = false
}

// tokenLedger emulates the sale-token contract: a balance map plus a burn
// counter, wired into the host's call and read handlers.
type tokenLedger struct {
	balances map[string]int64
	burned   int64
}

func wireToken(escrow int64) *tokenLedger {
	tl := &tokenLedger{balances: map[string]int64{escrowAccount: escrow}}
	sdk.Host.CallHandler = func(contractId, method, payload string) *string {
		if contractId != tokenContract {
			return nil
		}
		var args struct {
			To     string `json:"to"`
			Amount string `json:"amount"`
		}
		if err := json.Unmarshal([]byte(payload), &args); err != nil {
			return nil
		}
		amount, err := strconv.ParseInt(args.Amount, 10, 64)
		if err != nil || tl.balances[escrowAccount] < amount {
			return nil
		}
		switch method {
		case "transfer":
			tl.balances[escrowAccount] -= amount
			tl.balances[args.To] += amount
		case "burn":
			tl.balances[escrowAccount] -= amount
			tl.burned += amount
		default:
			return nil
		}
		ok := "ok"
		return &ok
	}
	sdk.Host.ReadHandler = func(contractId, key string) *string {
		if contractId != tokenContract {
			return nil
		}
		v := strconv.FormatInt(tl.balances[strings.TrimPrefix(key, "bal:")], 10)
		return &v
	}
	return tl
}

// saleParams carries the construction payload fields with workable defaults.
type saleParams struct {
	start, end      int64
	rateStable      int64
	rateNative      int64
	hardCap         int64
	buyerMax        int64
	expectedTotal   int64
	toleranceBps    int64
	adminUnlockAt   int64
	kycRequired     bool
	burnUnsold      bool
	unsoldRecipient string
	skipVaults      bool
}

func defaultParams() saleParams {
	return saleParams{
		start:      1000,
		end:        2000,
		rateStable: 100,
		rateNative: 50,
		hardCap:    10_000,
		buyerMax:   1_000,
		burnUnsold: true,
	}
}

// initSale constructs the sale as hive:gov at t=500 and, unless told otherwise,
// points the vaults (reserve/ops, 25% reserve split) in the same breath so the
// cool-down stamp lands at 500.
func initSale(t *testing.T, p saleParams) *tokenLedger {
	t.Helper()
	resetContract()
	tl := wireToken(p.hardCap)
	sdk.Host.SetSender(govAccount)
	sdk.Host.SetTimestamp(500)

	payload := fmt.Sprintf(
		`{"tokenContract":%q,"tokenDecimals":3,"start":%d,"end":%d,"rateStable":%d,"rateNative":%d,`+
			`"hardCap":%d,"buyerMax":%d,"expectedTotal":%d,"toleranceBps":%d,"adminUnlockAt":%d,`+
			`"kycRequired":%t,"burnUnsold":%t,"unsoldRecipient":%q}`,
		tokenContract, p.start, p.end, p.rateStable, p.rateNative,
		p.hardCap, p.buyerMax, p.expectedTotal, p.toleranceBps, p.adminUnlockAt,
		p.kycRequired, p.burnUnsold, p.unsoldRecipient,
	)
	res := ContractInit(&payload)
	require.NotNil(t, res)
	require.Equal(t, "initialized", *res)

	if !p.skipVaults {
		vp := `{"reserve":"hive:reserve","ops":"hive:ops"}`
		SetVaults(&vp)
		sp := `2500`
		SetReserveSplit(&sp)
	}
	return tl
}

// asGov switches the caller back to the governance holder in a fresh tx.
func asGov() {
	sdk.Host.SetSender(govAccount)
}

func allowIntent(asset sdk.Asset, limit float64) sdk.Intent {
	return sdk.Intent{Type: "transfer.allow", Args: map[string]string{
		"token": asset.String(),
		"limit": strconv.FormatFloat(limit, 'f', -1, 64),
	}}
}

// buyAs runs one purchase as the given buyer with a matching intent attached.
func buyAs(t *testing.T, buyer string, amount float64, asset sdk.Asset) *string {
	t.Helper()
	sdk.Host.SetSender(buyer)
	sdk.Host.SetIntents(allowIntent(asset, amount))
	payload := fmt.Sprintf(`{"amount":%s}`, strconv.FormatFloat(amount, 'f', -1, 64))
	if asset == sdk.AssetHbd {
		return BuyStable(&payload)
	}
	return BuyNative(&payload)
}

// expectAbort asserts fn panics with exactly the given abort message.
func expectAbort(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort %q, got none", msg)
		ae, ok := r.(sdk.AbortError)
		require.True(t, ok, "panic was not an abort: %v", r)
		require.Equal(t, msg, ae.Msg)
	}()
	fn()
}
