package main

import "presale/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the payment assets the sale accepts. hbd is the
// stable-value channel, hive the native one.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

const (
	// AmountScale defines the precision multiplier for hive-layer amounts
	// (3 fractional digits, amounts travel as int64 milliunits).
	AmountScale = 1000
	// HiveLayerDecimals is the fractional digit count behind AmountScale.
	HiveLayerDecimals uint8 = 3
	// CanonicalDecimals is the precision every balance is normalized to when
	// the finalization guard sums proceeds.
	CanonicalDecimals uint8 = 6
	// MaxTokenDecimals caps the configurable sale token precision.
	MaxTokenDecimals uint8 = 18
)

// -----------------------------------------------------------------------------
// Proportional Splits
// -----------------------------------------------------------------------------

// BpsDenom is the basis-point denominator used for the reserve split and the
// proceeds tolerance band.
const BpsDenom int64 = 10_000

// -----------------------------------------------------------------------------
// Finalization
// -----------------------------------------------------------------------------

// FinalizeCooldownSecs must elapse between the last vault (re)configuration
// and finalize, so a hijacked governance key cannot redirect proceeds and
// settle in the same breath.
const FinalizeCooldownSecs int64 = 3600

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxPromiseTextLength limits the size of promise registry entries.
	MaxPromiseTextLength = 500
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// PromisesCount holds an integer counter for promise entries (used for
	// generating IDs and iterating the log).
	PromisesCount = "count:promise"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kSaleConfig stores the serialized sale configuration blob.
	kSaleConfig byte = 0x01
	// kCaps stores the hard cap and per-buyer ceiling.
	kCaps byte = 0x02
	// kVaults stores the payout destinations plus split and cool-down stamp.
	kVaults byte = 0x03
	// kExpectation stores the finalization proceeds guard.
	kExpectation byte = 0x04
	// kSaleState tracks sold/raised totals and the terminal finalized flag.
	kSaleState byte = 0x05
	// kUnsoldPolicy stores the unsold-supply disposal policy.
	kUnsoldPolicy byte = 0x06
	// kGovernance stores the current holder and the single pending nominee.
	kGovernance byte = 0x07
	// kContribution houses per-buyer cumulative token acquisitions.
	kContribution byte = 0x10
	// kKyc flags per-identity purchase eligibility.
	kKyc byte = 0x11
	// kPromise contains encoded PromiseEntry records indexed by id.
	kPromise byte = 0x20
)
