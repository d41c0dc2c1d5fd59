//go:build !wasip1

package sdk

import (
	"fmt"
	"strconv"
)

// AbortError is what Abort panics with on native builds so tests can assert
// on the failure message. On chain the host kills the call before the panic
// unwinds anywhere.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string { return e.Msg }

// RevertError mirrors Revert for native builds.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string { return e.Symbol + ": " + e.Msg }

// LedgerEntry records a single hive-layer movement done through the mock host.
type LedgerEntry struct {
	From   Address
	To     Address
	Amount int64
	Asset  Asset
}

// MockHost is an in-memory stand-in for the vsc host: kv state, hive ledger
// balances, intent enforcement on draws and scriptable env + cross-contract
// handlers. It replaces the embedded-wasm harness the DAO contract ran its
// integration tests against.
type MockHost struct {
	State    map[string]string
	Balances map[string]map[Asset]int64

	ContractId  string
	TxId        string
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Address
	Intents     []Intent

	Draws     []LedgerEntry
	Transfers []LedgerEntry
	Logs      []string

	// CallHandler / ReadHandler emulate other contracts (the token ledger).
	CallHandler func(contractId, method, payload string) *string
	ReadHandler func(contractId, key string) *string

	txCounter int
	drawnInTx int64
}

// NewMockHost returns a host with an empty ledger and a first transaction open.
func NewMockHost() *MockHost {
	h := &MockHost{
		State:       map[string]string{},
		Balances:    map[string]map[Asset]int64{},
		ContractId:  "contract:presale",
		BlockId:     "block-0",
		BlockHeight: 1,
		Timestamp:   "0",
		Sender:      Address("hive:someone"),
	}
	h.NextTx()
	return h
}

var Host = NewMockHost()

// MockReset swaps in a fresh host, used by every test setup.
func MockReset() {
	Host = NewMockHost()
}

// NextTx opens a new transaction id so the contract-side env cache refreshes.
func (h *MockHost) NextTx() {
	h.txCounter++
	h.TxId = fmt.Sprintf("tx-%d", h.txCounter)
	h.drawnInTx = 0
}

// SetSender switches the calling identity and opens a new tx.
func (h *MockHost) SetSender(addr string) {
	h.Sender = Address(addr)
	h.NextTx()
}

// SetTimestamp moves ledger time (unix seconds) and opens a new tx.
func (h *MockHost) SetTimestamp(unix int64) {
	h.Timestamp = strconv.FormatInt(unix, 10)
	h.NextTx()
}

// SetIntents replaces the attached transfer intents and opens a new tx.
func (h *MockHost) SetIntents(intents ...Intent) {
	h.Intents = intents
	h.NextTx()
}

// Deposit credits an account on the mock hive ledger, like ct.Deposit in the
// node test harness.
func (h *MockHost) Deposit(addr string, amount int64, asset Asset) {
	h.credit(Address(addr), amount, asset)
}

// BalanceOf reads a mock ledger balance directly.
func (h *MockHost) BalanceOf(addr string, asset Asset) int64 {
	return h.Balances[addr][asset]
}

func (h *MockHost) credit(addr Address, amount int64, asset Asset) {
	if h.Balances[addr.String()] == nil {
		h.Balances[addr.String()] = map[Asset]int64{}
	}
	h.Balances[addr.String()][asset] += amount
}

func (h *MockHost) debit(addr Address, amount int64, asset Asset) {
	if h.Balances[addr.String()][asset] < amount {
		Abort("insufficient balance")
	}
	h.Balances[addr.String()][asset] -= amount
}

// intentLimit finds the first transfer.allow intent for the asset and returns
// its limit in milliunits.
func (h *MockHost) intentLimit(asset Asset) int64 {
	for _, intent := range h.Intents {
		if intent.Type != "transfer.allow" || intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			Abort("invalid intent limit")
		}
		return int64(limit * 1000)
	}
	return 0
}

// --- wrapper surface, mirroring sdk.go ---

func Log(s string) {
	Host.Logs = append(Host.Logs, s)
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	Host.State[key] = value
}

func StateGetObject(key string) *string {
	val, ok := Host.State[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(Host.State, key)
}

func GetEnv() Env {
	return Env{
		ContractId:  Host.ContractId,
		TxId:        Host.TxId,
		BlockId:     Host.BlockId,
		BlockHeight: Host.BlockHeight,
		Timestamp:   Host.Timestamp,
		Sender:      Sender{Address: Host.Sender, RequiredAuths: []Address{Host.Sender}},
		Intents:     Host.Intents,
	}
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = Host.ContractId
	case "tx.id":
		val = Host.TxId
	case "block.id":
		val = Host.BlockId
	case "block.timestamp":
		val = Host.Timestamp
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return Host.Balances[address.String()][asset]
}

// HiveDraw enforces the transfer.allow limit across all draws of the current
// tx, then moves funds from the sender to the contract account.
func HiveDraw(amount int64, asset Asset) {
	limit := Host.intentLimit(asset)
	if Host.drawnInTx+amount > limit {
		Abort("draw exceeds intent limit")
	}
	Host.drawnInTx += amount
	Host.debit(Host.Sender, amount, asset)
	Host.credit(Address(Host.ContractId), amount, asset)
	Host.Draws = append(Host.Draws, LedgerEntry{From: Host.Sender, To: Address(Host.ContractId), Amount: amount, Asset: asset})
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	Host.debit(Address(Host.ContractId), amount, asset)
	Host.credit(to, amount, asset)
	Host.Transfers = append(Host.Transfers, LedgerEntry{From: Address(Host.ContractId), To: to, Amount: amount, Asset: asset})
}

func HiveWithdraw(to Address, amount int64, asset Asset) {
	Host.debit(Address(Host.ContractId), amount, asset)
	Host.Transfers = append(Host.Transfers, LedgerEntry{From: Address(Host.ContractId), To: to, Amount: amount, Asset: asset})
}

func ContractStateGet(contractId string, key string) *string {
	if Host.ReadHandler == nil {
		return nil
	}
	return Host.ReadHandler(contractId, key)
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	if Host.CallHandler == nil {
		Abort("no contract call handler registered")
	}
	return Host.CallHandler(contractId, method, payload)
}
