package main

import (
	"fmt"
	"strconv"

	"presale/sdk"
)

// One terse log line per logical occurrence. Indexers replay accounting from
// these lines alone, so every figure that moves shows up here.

// emitInitEvent marks construction with the owner and the token under sale.
func emitInitEvent(owner string, tokenContract string) {
	sdk.Log(fmt.Sprintf("in|by:%s|tk:%s", owner, tokenContract))
}

// emitPurchase carries buyer, payment channel, amount paid, tokens out and the
// unit rate so price math can be replayed from logs only.
func emitPurchase(buyer string, asset sdk.Asset, amountPaid Amount, tokensOut int64, rate int64) {
	sdk.Log(fmt.Sprintf(
		"py|by:%s|as:%s|am:%d|tk:%d|r:%d",
		buyer,
		asset.String(),
		amountPaid,
		tokensOut,
		rate,
	))
}

// emitHardCapReached fires once, on the purchase that lands exactly on the cap.
func emitHardCapReached(totalSold int64) {
	sdk.Log(fmt.Sprintf("hc|sold:%d", totalSold))
}

// emitSaleClosed records the terminal totals when finalization closes the sale.
func emitSaleClosed(totalSold int64, stableRaised, nativeRaised Amount, ts int64) {
	sdk.Log(fmt.Sprintf(
		"sc|sold:%d|sr:%d|nr:%d|ts:%d",
		totalSold,
		stableRaised,
		nativeRaised,
		ts,
	))
}

// emitFinalized spells out both payout legs per asset for auditors.
func emitFinalized(totalSold int64, stableRaised, nativeRaised, reserveStable, reserveNative, opsStable, opsNative Amount) {
	sdk.Log(fmt.Sprintf(
		"fz|sold:%d|sr:%d|nr:%d|rs:%d|rn:%d|os:%d|on:%d",
		totalSold,
		stableRaised,
		nativeRaised,
		reserveStable,
		reserveNative,
		opsStable,
		opsNative,
	))
}

// emitUnsoldBurned logs destructive disposal of leftover supply.
func emitUnsoldBurned(amount int64) {
	sdk.Log(fmt.Sprintf("ub|am:%d", amount))
}

// emitUnsoldTransferred logs leftover supply handed to a recipient.
func emitUnsoldTransferred(to string, amount int64) {
	sdk.Log(fmt.Sprintf("ur|to:%s|am:%d", to, amount))
}

// emitDustSwept logs the post-finalization residue sweep to ops.
func emitDustSwept(to string, stable, native Amount) {
	sdk.Log(fmt.Sprintf("ds|to:%s|sr:%d|nr:%d", to, stable, native))
}

func emitVaultsUpdated(reserve, ops string) {
	sdk.Log(fmt.Sprintf("vu|rv:%s|op:%s", reserve, ops))
}

func emitReserveSplitUpdated(bps int64) {
	sdk.Log(fmt.Sprintf("su|bps:%d", bps))
}

func emitBuyerMaxUpdated(max int64) {
	sdk.Log(fmt.Sprintf("bm|max:%d", max))
}

func emitRatesUpdated(stable, native int64) {
	sdk.Log(fmt.Sprintf("ru|st:%d|nt:%d", stable, native))
}

func emitTimesUpdated(start, end int64) {
	sdk.Log(fmt.Sprintf("tu|s:%d|e:%d", start, end))
}

func emitExpectationUpdated(expected, toleranceBps int64) {
	sdk.Log(fmt.Sprintf("eu|ex:%d|tol:%d", expected, toleranceBps))
}

func emitUnsoldPolicyUpdated(burn bool, recipient string) {
	sdk.Log(fmt.Sprintf("up|burn:%s|to:%s", strconv.FormatBool(burn), recipient))
}

func emitKycStatusUpdated(account string, passed bool) {
	sdk.Log(fmt.Sprintf("ky|ac:%s|ok:%s", account, strconv.FormatBool(passed)))
}

func emitKycRequiredUpdated(required bool) {
	sdk.Log(fmt.Sprintf("kr|on:%s", strconv.FormatBool(required)))
}

func emitPauseToggled(paused bool) {
	sdk.Log(fmt.Sprintf("pp|on:%s", strconv.FormatBool(paused)))
}

func emitGovTransferStarted(from, to string) {
	sdk.Log(fmt.Sprintf("gs|from:%s|to:%s", from, to))
}

func emitGovTransferCancelled(from, to string) {
	sdk.Log(fmt.Sprintf("gc|from:%s|to:%s", from, to))
}

func emitGovTransferred(from, to string) {
	sdk.Log(fmt.Sprintf("gt|from:%s|to:%s", from, to))
}

func emitPromiseRecorded(id uint64) {
	sdk.Log(fmt.Sprintf("pa|id:%d", id))
}

func emitPromiseStatusUpdated(id uint64, status PromiseStatus) {
	sdk.Log(fmt.Sprintf("pu|id:%d|s:%s", id, status.String()))
}
