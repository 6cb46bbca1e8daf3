package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"crowdfunder/sdk"
)

const (
	testContractID = "contract:crowdfund"
	testPoolID     = "contract:pool"
	testOwner      = "hive:platform"
	testFeeAccount = "hive:feeacct"
	testCreator    = "hive:creator"
	testAlice      = "hive:alice"
	testBob        = "hive:bob"
)

var testTxCounter int

// setEnv installs a fresh env snapshot for sender at the given block time.
// Every call gets a unique tx.id so the per-tx env cache refreshes.
func setEnv(sender string, blockTime int64, intents ...sdk.Intent) {
	testTxCounter++
	sdk.Mock.SetEnv(sdk.Env{
		ContractId: testContractID,
		TxId:       fmt.Sprintf("tx-%d", testTxCounter),
		Timestamp:  strconv.FormatInt(blockTime, 10),
		Intents:    intents,
		Sender:     sdk.Sender{Address: sdk.Address(sender)},
		Caller:     sdk.Caller{Address: sdk.Address(sender)},
	})
}

// transferIntent builds a transfer.allow intent with a human-unit limit.
func transferIntent(limit float64, token sdk.Asset) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatFloat(limit, 'f', -1, 64),
			"token": token.String(),
		},
	}
}

// setupContract resets the mock host and initializes the contract with a 10%
// fee and the standard pool.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	setEnv(testOwner, 1_000_000)
	ContractInit(strptr(testFeeAccount + "|10|" + testPoolID))
}

// installPool publishes pool reserves (scaled units) and a swap handler that
// pays stable out of the pool's balance like the real venue would.
func installPool(t *testing.T, nativeReserve, stableReserve int64) {
	t.Helper()
	sdk.Mock.Contracts[testPoolID] = map[string]string{
		"reserves": fmt.Sprintf("%d|%d", nativeReserve, stableReserve),
	}
	sdk.Mock.Deposit(testPoolID, StableAsset, stableReserve)
	sdk.Mock.CallHandler = func(contractID, method, payload string, _ *sdk.ContractCallOptions) *string {
		if contractID != testPoolID || method != "swap_exact_out" {
			return nil
		}
		parts := strings.Split(payload, "|")
		out, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil
		}
		sdk.Mock.Move(testPoolID, parts[1], out, StableAsset)
		ok := "ok"
		return &ok
	}
}

// expectAbort asserts that fn aborts with exactly the given message.
func expectAbort(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort %q, got none", want)
		ae, ok := r.(sdk.AbortError)
		require.True(t, ok, "panic was not an abort: %v", r)
		require.Equal(t, want, ae.Error())
	}()
	fn()
}

// makeTestProject creates a campaign and returns its id. Goal and deadline in
// scaled units / unix seconds.
func makeTestProject(t *testing.T, creator string, goal float64, deadline int64) uint64 {
	t.Helper()
	setEnv(creator, 1_000_000)
	MakeProject(strptr(fmt.Sprintf("Solar Farm|Community solar panels|ipfs://media|%g|%d", goal, deadline)))
	return projectCount()
}

// fund seeds the supporter with stable tokens and contributes directly.
func fund(t *testing.T, supporter string, id uint64, amount float64, blockTime int64) {
	t.Helper()
	sdk.Mock.Deposit(supporter, StableAsset, AmountToInt64(FloatToAmount(amount)))
	setEnv(supporter, blockTime, transferIntent(amount, StableAsset))
	Contribute(strptr(fmt.Sprintf("%d|%g", id, amount)))
}
