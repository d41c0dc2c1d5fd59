package main

import (
	"strconv"
	"strings"

	"presale/sdk"
)

// -----------------------------------------------------------------------------
// Sale Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(saleConfigKey())
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// encodeBool keeps bool flags as single chars inside pipe blobs.
func encodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// parseI64 decodes a decimal field and aborts on corrupt state, since a broken
// blob means the contract storage itself is damaged.
func parseI64(s string, what string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		sdk.Abort("corrupt state: " + what)
	}
	return v
}

// saveSaleConfig serializes the config to a pipe-delimited string.
// Format: tokenContract|tokenDecimals|start|end|rateStable|rateNative|kyc|adminUnlock|paused
func saveSaleConfig(cfg *SaleConfig) {
	parts := []string{
		cfg.TokenContract,
		strconv.FormatUint(uint64(cfg.TokenDecimals), 10),
		strconv.FormatInt(cfg.StartAt, 10),
		strconv.FormatInt(cfg.EndAt, 10),
		strconv.FormatInt(cfg.RateStable, 10),
		strconv.FormatInt(cfg.RateNative, 10),
		encodeBool(cfg.KycRequired),
		strconv.FormatInt(cfg.AdminUnlockAt, 10),
		encodeBool(cfg.Paused),
	}
	sdk.StateSetObject(saleConfigKey(), strings.Join(parts, "|"))
}

// loadSaleConfig deserializes the config blob, aborting when absent.
func loadSaleConfig() *SaleConfig {
	ptr := sdk.StateGetObject(saleConfigKey())
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract not initialized")
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 9 {
		sdk.Abort("corrupt state: sale config")
	}
	return &SaleConfig{
		TokenContract: parts[0],
		TokenDecimals: uint8(parseI64(parts[1], "token decimals")),
		StartAt:       parseI64(parts[2], "sale start"),
		EndAt:         parseI64(parts[3], "sale end"),
		RateStable:    parseI64(parts[4], "stable rate"),
		RateNative:    parseI64(parts[5], "native rate"),
		KycRequired:   parts[6] == "1",
		AdminUnlockAt: parseI64(parts[7], "admin unlock"),
		Paused:        parts[8] == "1",
	}
}

// -----------------------------------------------------------------------------
// Caps
// -----------------------------------------------------------------------------

// Format: hardCap|buyerMax
func saveCaps(caps *CapsConfig) {
	sdk.StateSetObject(capsKey(),
		strconv.FormatInt(caps.HardCap, 10)+"|"+strconv.FormatInt(caps.BuyerMax, 10))
}

func loadCaps() *CapsConfig {
	ptr := sdk.StateGetObject(capsKey())
	if ptr == nil || *ptr == "" {
		sdk.Abort("corrupt state: caps")
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 2 {
		sdk.Abort("corrupt state: caps")
	}
	return &CapsConfig{
		HardCap:  parseI64(parts[0], "hard cap"),
		BuyerMax: parseI64(parts[1], "buyer max"),
	}
}

// -----------------------------------------------------------------------------
// Vaults
// -----------------------------------------------------------------------------

// Format: reserve|ops|splitBps|lastSetAt
func saveVaults(v *VaultConfig) {
	parts := []string{
		v.Reserve.String(),
		v.Ops.String(),
		strconv.FormatInt(v.ReserveSplitBps, 10),
		strconv.FormatInt(v.LastSetAt, 10),
	}
	sdk.StateSetObject(vaultsKey(), strings.Join(parts, "|"))
}

func loadVaults() *VaultConfig {
	ptr := sdk.StateGetObject(vaultsKey())
	if ptr == nil || *ptr == "" {
		return &VaultConfig{}
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 4 {
		sdk.Abort("corrupt state: vaults")
	}
	return &VaultConfig{
		Reserve:         AddressFromString(parts[0]),
		Ops:             AddressFromString(parts[1]),
		ReserveSplitBps: parseI64(parts[2], "reserve split"),
		LastSetAt:       parseI64(parts[3], "vault stamp"),
	}
}

// -----------------------------------------------------------------------------
// Expectation
// -----------------------------------------------------------------------------

// Format: expectedTotal|toleranceBps
func saveExpectation(e *ExpectationConfig) {
	sdk.StateSetObject(expectationKey(),
		strconv.FormatInt(e.ExpectedTotal, 10)+"|"+strconv.FormatInt(e.ToleranceBps, 10))
}

func loadExpectation() *ExpectationConfig {
	ptr := sdk.StateGetObject(expectationKey())
	if ptr == nil || *ptr == "" {
		return &ExpectationConfig{}
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 2 {
		sdk.Abort("corrupt state: expectation")
	}
	return &ExpectationConfig{
		ExpectedTotal: parseI64(parts[0], "expected total"),
		ToleranceBps:  parseI64(parts[1], "tolerance"),
	}
}

// -----------------------------------------------------------------------------
// Sale State
// -----------------------------------------------------------------------------

// Format: sold|stableRaised|nativeRaised|finalized
func saveSaleState(st *SaleState) {
	parts := []string{
		strconv.FormatInt(st.Sold, 10),
		strconv.FormatInt(int64(st.StableRaised), 10),
		strconv.FormatInt(int64(st.NativeRaised), 10),
		encodeBool(st.Finalized),
	}
	sdk.StateSetObject(saleStateKey(), strings.Join(parts, "|"))
}

func loadSaleState() *SaleState {
	ptr := sdk.StateGetObject(saleStateKey())
	if ptr == nil || *ptr == "" {
		return &SaleState{}
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) < 4 {
		sdk.Abort("corrupt state: sale state")
	}
	return &SaleState{
		Sold:         parseI64(parts[0], "sold"),
		StableRaised: Amount(parseI64(parts[1], "stable raised")),
		NativeRaised: Amount(parseI64(parts[2], "native raised")),
		Finalized:    parts[3] == "1",
	}
}

// -----------------------------------------------------------------------------
// Unsold Policy
// -----------------------------------------------------------------------------

// Format: burn|recipient
func saveUnsoldPolicy(p *UnsoldPolicy) {
	sdk.StateSetObject(unsoldPolicyKey(), encodeBool(p.Burn)+"|"+p.Recipient.String())
}

func loadUnsoldPolicy() *UnsoldPolicy {
	ptr := sdk.StateGetObject(unsoldPolicyKey())
	if ptr == nil || *ptr == "" {
		return &UnsoldPolicy{}
	}
	parts := strings.SplitN(*ptr, "|", 2)
	if len(parts) < 2 {
		sdk.Abort("corrupt state: unsold policy")
	}
	return &UnsoldPolicy{
		Burn:      parts[0] == "1",
		Recipient: AddressFromString(parts[1]),
	}
}

// -----------------------------------------------------------------------------
// Governance
// -----------------------------------------------------------------------------

// Format: current|pending
func saveGovernance(g *GovernanceState) {
	sdk.StateSetObject(governanceKey(), g.Current.String()+"|"+g.Pending.String())
}

func loadGovernance() *GovernanceState {
	ptr := sdk.StateGetObject(governanceKey())
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract not initialized")
	}
	parts := strings.SplitN(*ptr, "|", 2)
	if len(parts) < 2 {
		sdk.Abort("corrupt state: governance")
	}
	return &GovernanceState{
		Current: AddressFromString(parts[0]),
		Pending: AddressFromString(parts[1]),
	}
}
