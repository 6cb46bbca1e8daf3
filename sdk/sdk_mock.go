//go:build !wasm

package sdk

// In-memory host emulation for non-wasm builds. Exposes the same wrapper
// functions as sdk.go plus a Mock control surface so contract tests can seed
// balances, env snapshots and foreign contract state, and inspect the fund
// movements a call produced. Draws are bounded by the transfer.allow intents
// of the current env, matching the on-chain ledger behavior.

import (
	"fmt"
	"math"
	"strconv"
)

// Transfer records one ledger movement the mock host performed.
type Transfer struct {
	From   string
	To     string
	Amount int64
	Asset  Asset
}

type MockHost struct {
	State     map[string]string
	Balances  map[string]map[Asset]int64
	Env       Env
	Contracts map[string]map[string]string
	Logs      []string
	Transfers []Transfer

	// CallHandler services ContractCall. Tests install a venue simulator
	// here; nil makes every inter-contract call report failure.
	CallHandler func(contractID, method, payload string, options *ContractCallOptions) *string

	intentRemaining map[Asset]int64
}

var Mock = newMockHost()

func newMockHost() *MockHost {
	return &MockHost{
		State:           map[string]string{},
		Balances:        map[string]map[Asset]int64{},
		Contracts:       map[string]map[string]string{},
		intentRemaining: map[Asset]int64{},
	}
}

// MockReset wipes all host state between tests.
func MockReset() {
	*Mock = *newMockHost()
}

// SetEnv installs the env snapshot for the next call and rearms the
// transfer.allow budgets from its intents.
func (m *MockHost) SetEnv(env Env) {
	m.Env = env
	m.intentRemaining = map[Asset]int64{}
	for _, intent := range env.Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			continue
		}
		m.intentRemaining[Asset(intent.Args["token"])] += int64(math.Round(limit * 1000))
	}
}

// Deposit seeds an account balance (milli-units).
func (m *MockHost) Deposit(account string, asset Asset, amount int64) {
	if m.Balances[account] == nil {
		m.Balances[account] = map[Asset]int64{}
	}
	m.Balances[account][asset] += amount
}

// BalanceOf reads an account balance without going through GetBalance.
func (m *MockHost) BalanceOf(account string, asset Asset) int64 {
	return m.Balances[account][asset]
}

// Move shifts funds between two accounts, recording the transfer. Used by
// test venue simulators to model another contract paying out.
func (m *MockHost) Move(from, to string, amount int64, asset Asset) {
	if m.Balances[from][asset] < amount {
		Abort(fmt.Sprintf("mock: %s has insufficient %s", from, asset))
	}
	m.Balances[from][asset] -= amount
	m.Deposit(to, asset, amount)
	m.Transfers = append(m.Transfers, Transfer{From: from, To: to, Amount: amount, Asset: asset})
}

// --- wrapper functions, same surface as the wasm build ---

func Log(s string) {
	Mock.Logs = append(Mock.Logs, s)
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic(AbortError(msg))
}

func Revert(msg string, symbol string) {
	panic(AbortError(msg))
}

func StateSetObject(key string, value string) {
	Mock.State[key] = value
}

func StateGetObject(key string) *string {
	val, ok := Mock.State[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(Mock.State, key)
}

func GetEnv() Env {
	return Mock.Env
}

func GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &Mock.Env.Timestamp
	case "tx.id":
		return &Mock.Env.TxId
	case "contract.id":
		return &Mock.Env.ContractId
	default:
		return nil
	}
}

func GetBalance(address Address, asset Asset) int64 {
	return Mock.BalanceOf(address.String(), asset)
}

func HiveDraw(amount int64, asset Asset) {
	sender := Mock.Env.Sender.Address.String()
	if Mock.intentRemaining[asset] < amount {
		Abort("draw exceeds transfer allowance")
	}
	if Mock.BalanceOf(sender, asset) < amount {
		Abort("insufficient balance")
	}
	Mock.intentRemaining[asset] -= amount
	Mock.Move(sender, Mock.Env.ContractId, amount, asset)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	self := Mock.Env.ContractId
	if Mock.BalanceOf(self, asset) < amount {
		Abort("insufficient contract balance")
	}
	Mock.Move(self, to.String(), amount, asset)
}

func HiveWithdraw(to Address, amount int64, asset Asset) {
	HiveTransfer(to, amount, asset)
}

func ContractStateGet(contractId string, key string) *string {
	st, ok := Mock.Contracts[contractId]
	if !ok {
		return nil
	}
	val, ok := st[key]
	if !ok {
		return nil
	}
	return &val
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	if Mock.CallHandler == nil {
		return nil
	}
	return Mock.CallHandler(contractId, method, payload, options)
}
