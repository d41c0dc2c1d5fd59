package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale/sdk"
)

func enterWindow() {
	sdk.Host.SetTimestamp(1500)
}

func TestBuyStableHappyPath(t *testing.T) {
	tl := initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 100_000, sdk.AssetHbd) // 100 hbd

	res := buyAs(t, "hive:alice", 2.5, sdk.AssetHbd)
	require.Equal(t, "purchase complete", *res)

	// 2.5 hbd at rate 100 buys 250 token units.
	assert.Equal(t, int64(250), contributionOf(AddressFromString("hive:alice")))
	assert.Equal(t, int64(250), tl.balances["hive:alice"])

	st := loadSaleState()
	assert.Equal(t, int64(250), st.Sold)
	assert.Equal(t, Amount(2_500), st.StableRaised)
	assert.Equal(t, Amount(0), st.NativeRaised)

	// Payment landed in contract escrow through a drawn intent.
	assert.Equal(t, int64(2_500), sdk.Host.BalanceOf(escrowAccount, sdk.AssetHbd))
	assert.Equal(t, int64(97_500), sdk.Host.BalanceOf("hive:alice", sdk.AssetHbd))
	require.Len(t, sdk.Host.Draws, 1)
}

func TestBuyNativeUsesOwnRateAndBucket(t *testing.T) {
	tl := initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:bob", 10_000, sdk.AssetHive)

	buyAs(t, "hive:bob", 2, sdk.AssetHive)

	// 2 hive at rate 50 buys 100 token units.
	assert.Equal(t, int64(100), tl.balances["hive:bob"])
	st := loadSaleState()
	assert.Equal(t, int64(100), st.Sold)
	assert.Equal(t, Amount(0), st.StableRaised)
	assert.Equal(t, Amount(2_000), st.NativeRaised)
}

func TestBuyWindowInclusiveAtBothEnds(t *testing.T) {
	initSale(t, defaultParams())
	sdk.Host.Deposit("hive:alice", 100_000, sdk.AssetHbd)

	sdk.Host.SetTimestamp(999)
	expectAbort(t, "outside sale window", func() {
		buyAs(t, "hive:alice", 1, sdk.AssetHbd)
	})

	sdk.Host.SetTimestamp(1000)
	require.NotNil(t, buyAs(t, "hive:alice", 1, sdk.AssetHbd))

	sdk.Host.SetTimestamp(2000)
	require.NotNil(t, buyAs(t, "hive:alice", 1, sdk.AssetHbd))

	sdk.Host.SetTimestamp(2001)
	expectAbort(t, "outside sale window", func() {
		buyAs(t, "hive:alice", 1, sdk.AssetHbd)
	})
}

func TestBuyWhilePaused(t *testing.T) {
	initSale(t, defaultParams())
	Pause(nil)
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)

	expectAbort(t, "sale paused", func() {
		buyAs(t, "hive:alice", 1, sdk.AssetHbd)
	})

	asGov()
	Unpause(nil)
	enterWindow()
	require.NotNil(t, buyAs(t, "hive:alice", 1, sdk.AssetHbd))
}

func TestBuyRejectsNonPositiveAmount(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	expectAbort(t, "amount must be positive", func() {
		buyAs(t, "hive:alice", 0, sdk.AssetHbd)
	})
	expectAbort(t, "amount must be positive", func() {
		buyAs(t, "hive:alice", -2, sdk.AssetHbd)
	})
}

func TestBuyNativeDisabledChannel(t *testing.T) {
	p := defaultParams()
	p.rateNative = 0
	initSale(t, p)
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHive)

	expectAbort(t, "native channel disabled", func() {
		buyAs(t, "hive:alice", 1, sdk.AssetHive)
	})
}

func TestBuyBelowMinimumTokenUnit(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)

	// 0.001 hbd at rate 100 floors to zero token units.
	expectAbort(t, "amount below minimum token unit", func() {
		buyAs(t, "hive:alice", 0.001, sdk.AssetHbd)
	})
}

func TestBuyKycGate(t *testing.T) {
	p := defaultParams()
	p.kycRequired = true
	initSale(t, p)
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)

	expectAbort(t, "kyc check failed", func() {
		buyAs(t, "hive:alice", 1, sdk.AssetHbd)
	})

	asGov()
	payload := `{"account":"hive:alice","passed":true}`
	SetKyc(&payload)
	enterWindow()
	require.NotNil(t, buyAs(t, "hive:alice", 1, sdk.AssetHbd))
}

func TestBuyHardCapBoundary(t *testing.T) {
	p := defaultParams()
	p.hardCap = 500
	p.buyerMax = 500
	initSale(t, p)
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)
	sdk.Host.Deposit("hive:bob", 10_000, sdk.AssetHbd)

	// Landing exactly on the cap is allowed and announced.
	buyAs(t, "hive:alice", 5, sdk.AssetHbd)
	assert.Equal(t, int64(500), loadSaleState().Sold)
	assert.Contains(t, sdk.Host.Logs, "hc|sold:500")

	expectAbort(t, "hard cap exceeded", func() {
		buyAs(t, "hive:bob", 0.01, sdk.AssetHbd)
	})
}

func TestBuyBuyerCapBoundary(t *testing.T) {
	p := defaultParams()
	p.buyerMax = 300
	initSale(t, p)
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)

	buyAs(t, "hive:alice", 2, sdk.AssetHbd) // 200 units
	buyAs(t, "hive:alice", 1, sdk.AssetHbd) // 100 units, exactly at cap
	assert.Equal(t, int64(300), contributionOf(AddressFromString("hive:alice")))

	expectAbort(t, "buyer cap exceeded", func() {
		buyAs(t, "hive:alice", 0.01, sdk.AssetHbd)
	})
}

func TestBuyIntentEnforcement(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)
	payload := `{"amount":2}`

	// No intent attached at all.
	sdk.Host.SetSender("hive:alice")
	sdk.Host.SetIntents()
	expectAbort(t, "missing transfer.allow intent", func() {
		BuyStable(&payload)
	})

	// Intent covers the wrong asset.
	sdk.Host.SetIntents(allowIntent(sdk.AssetHive, 2))
	expectAbort(t, "missing transfer.allow intent", func() {
		BuyStable(&payload)
	})

	// Intent limit smaller than the purchase.
	sdk.Host.SetIntents(allowIntent(sdk.AssetHbd, 1.5))
	expectAbort(t, "intent limit below amount", func() {
		BuyStable(&payload)
	})

	sdk.Host.SetIntents(allowIntent(sdk.AssetHbd, 2))
	require.NotNil(t, BuyStable(&payload))
}

func TestSoldEqualsSumOfContributions(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()

	buyers := []string{"hive:a", "hive:b", "hive:c"}
	for _, b := range buyers {
		sdk.Host.Deposit(b, 50_000, sdk.AssetHbd)
		sdk.Host.Deposit(b, 50_000, sdk.AssetHive)
	}
	buyAs(t, "hive:a", 3, sdk.AssetHbd)
	buyAs(t, "hive:b", 1.25, sdk.AssetHbd)
	buyAs(t, "hive:b", 4, sdk.AssetHive)
	buyAs(t, "hive:c", 0.5, sdk.AssetHive)

	var sum int64
	for _, b := range buyers {
		sum += contributionOf(AddressFromString(b))
	}
	assert.Equal(t, loadSaleState().Sold, sum)
}

func TestPurchaseEventReplaysPriceMath(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)

	buyAs(t, "hive:alice", 2.5, sdk.AssetHbd)

	want := fmt.Sprintf("py|by:%s|as:%s|am:%d|tk:%d|r:%d", "hive:alice", "hbd", 2500, 250, 100)
	assert.Contains(t, sdk.Host.Logs, want)
}

func TestBuyRejectsMalformedAmount(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.SetSender("hive:alice")
	sdk.Host.SetIntents(allowIntent(sdk.AssetHbd, 2))

	payload := `{"amount":"lots"}`
	expectAbort(t, "invalid buy payload", func() {
		BuyStable(&payload)
	})
}

func TestStateViewRendersFractionalTotals(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)
	buyAs(t, "hive:alice", 2.5, sdk.AssetHbd)

	view := GetState(nil)
	require.NotNil(t, view)
	assert.Contains(t, *view, `"stableRaised":2.5`)
	assert.Contains(t, *view, `"nativeRaised":0`)
}

func TestContributionView(t *testing.T) {
	initSale(t, defaultParams())
	enterWindow()
	sdk.Host.Deposit("hive:alice", 10_000, sdk.AssetHbd)
	buyAs(t, "hive:alice", 2.5, sdk.AssetHbd)

	payload := `"hive:alice"`
	view := GetContribution(&payload)
	require.NotNil(t, view)
	assert.Equal(t, "250", *view)

	payload = `"hive:nobody"`
	view = GetContribution(&payload)
	assert.Equal(t, "0", *view)
}
