package main

import (
	"math"

	"presale/sdk"
)

// Amount is a hive-layer balance in milliunits.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// SaleConfig is the mutable sale parameter block. The admin unlock instant is
// fixed at construction and never rewritten.
type SaleConfig struct {
	TokenContract string
	TokenDecimals uint8
	StartAt       int64
	EndAt         int64
	RateStable    int64 // token units issued per whole hbd, zero disables the channel
	RateNative    int64 // token units issued per whole hive, zero disables the channel
	KycRequired   bool
	AdminUnlockAt int64
	Paused        bool
}

// CapsConfig holds the global and per-buyer token ceilings, both in token units.
type CapsConfig struct {
	HardCap  int64
	BuyerMax int64
}

// VaultConfig holds the two payout destinations, the reserve share in basis
// points and the stamp driving the finalize cool-down.
type VaultConfig struct {
	Reserve         sdk.Address
	Ops             sdk.Address
	ReserveSplitBps int64
	LastSetAt       int64
}

// ExpectationConfig guards finalization only, never purchases. ExpectedTotal
// is in canonical precision.
type ExpectationConfig struct {
	ExpectedTotal int64
	ToleranceBps  int64
}

// SaleState is the accounting heart: Sold is the single source of truth for
// hard-cap enforcement, Finalized is write-once.
type SaleState struct {
	Sold         int64
	StableRaised Amount
	NativeRaised Amount
	Finalized    bool
}

// UnsoldPolicy decides what happens to leftover supply at finalization.
// Burn and Recipient are mutually exclusive.
type UnsoldPolicy struct {
	Burn      bool
	Recipient sdk.Address
}

// GovernanceState keeps the current holder plus at most one pending nominee.
type GovernanceState struct {
	Current sdk.Address
	Pending sdk.Address
}

// PromiseStatus captures a promise entry's lifecycle.
type PromiseStatus uint8

const (
	PromisePending PromiseStatus = 0
	PromiseKept    PromiseStatus = 1
	PromiseBroken  PromiseStatus = 2
)

// String prints the status as lower-case text for events and views.
// Example payload: PromiseKept.String()
func (ps PromiseStatus) String() string {
	switch ps {
	case PromiseKept:
		return "kept"
	case PromiseBroken:
		return "broken"
	default:
		return "pending"
	}
}

// parsePromiseStatus maps the payload text back to the enum.
func parsePromiseStatus(s string) (PromiseStatus, bool) {
	switch s {
	case "pending":
		return PromisePending, true
	case "kept":
		return PromiseKept, true
	case "broken":
		return PromiseBroken, true
	default:
		return PromisePending, false
	}
}

// PromiseEntry is one line of the append-only transparency log.
type PromiseEntry struct {
	Text      string
	Status    PromiseStatus
	UpdatedAt int64
}

type InitArgs struct {
	TokenContract   string
	TokenDecimals   uint8
	StartAt         int64
	EndAt           int64
	RateStable      int64
	RateNative      int64
	HardCap         int64
	BuyerMax        int64
	ExpectedTotal   int64
	ToleranceBps    int64
	AdminUnlockAt   int64
	KycRequired     bool
	BurnUnsold      bool
	UnsoldRecipient string
}

type BuyArgs struct {
	Amount float64
}

type SetTimesArgs struct {
	StartAt int64
	EndAt   int64
}

type SetRatesArgs struct {
	RateStable int64
	RateNative int64
}

type SetVaultsArgs struct {
	Reserve string
	Ops     string
}

type SetKycArgs struct {
	Account string
	Passed  bool
}

type SetUnsoldPolicyArgs struct {
	Burn      bool
	Recipient string
}

type SetExpectationArgs struct {
	ExpectedTotal int64
	ToleranceBps  int64
}

type FinalizeArgs struct {
	UnsoldRecipient string
}

type PromiseStatusArgs struct {
	ID     uint64
	Status string
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
