package main

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfunder/sdk"
)

func TestQuoteExactOut(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)

	// in = 1_000_000 * 1000 * 1000 / (499_000 * 997) + 1
	assert.Equal(t, Amount(2011), quoteExactOut(1_000_000, 500_000, 1000))

	// larger outputs move the price against the caller
	small := quoteExactOut(1_000_000, 500_000, 1000)
	large := quoteExactOut(1_000_000, 500_000, 100_000)
	assert.Greater(t, float64(large)/100.0, float64(small))
}

func TestQuoteExactOutLiquidityBound(t *testing.T) {
	setupContract(t)
	expectAbort(t, errPoolLiquidity, func() {
		quoteExactOut(1_000_000, 500_000, 500_000)
	})
}

func TestQuoteExactOutLargeReserves(t *testing.T) {
	setupContract(t)
	// reserves past the int64 overflow point for naive multiplication
	in := quoteExactOut(4_000_000_000_000, 2_000_000_000_000, 1_000_000)
	assert.Greater(t, int64(in), int64(2_000_000))
	assert.Less(t, int64(in), int64(2_100_000))
}

func TestQuoteNativeInput(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)

	setEnv(testAlice, 1_100_000)
	res := QuoteNativeInput(strptr("1"))
	require.NotNil(t, res)

	var got struct {
		StableOut float64 `json:"stableOut"`
		NativeIn  float64 `json:"nativeIn"`
	}
	require.NoError(t, json.Unmarshal([]byte(*res), &got))
	assert.InDelta(t, 1.0, got.StableOut, 1e-9)
	assert.InDelta(t, 2.011, got.NativeIn, 1e-9)
}

func TestQuoteNativeInputValidation(t *testing.T) {
	setupContract(t)
	setEnv(testAlice, 1_100_000)

	expectAbort(t, errZeroStableOut, func() {
		QuoteNativeInput(strptr("0"))
	})
	// pool published nothing yet
	expectAbort(t, errNoPoolReserves, func() {
		QuoteNativeInput(strptr("1"))
	})
}

func TestConvertNativeToStable(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	setEnv(testAlice, 1_100_000, transferIntent(3, NativeAsset))
	ConvertNativeToStable(strptr("1|1200000"))

	// 2.011 native spent, 0.989 of the 3.0 budget refunded
	assert.Equal(t, int64(2_989), sdk.Mock.BalanceOf(testAlice, NativeAsset))
	assert.Equal(t, int64(1_000), sdk.Mock.BalanceOf(testAlice, StableAsset))
	assert.Equal(t, int64(2_011), sdk.Mock.BalanceOf(testPoolID, NativeAsset))
	assert.Equal(t, int64(0), sdk.Mock.BalanceOf(testContractID, NativeAsset))
}

func TestConvertValidation(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	setEnv(testAlice, 1_100_000, transferIntent(3, NativeAsset))
	expectAbort(t, errZeroStableOut, func() {
		ConvertNativeToStable(strptr("0|1200000"))
	})
	expectAbort(t, errDeadlineExpired, func() {
		ConvertNativeToStable(strptr("1|1100000"))
	})

	// a stable-token intent is no authorization to draw native
	setEnv(testAlice, 1_100_000, transferIntent(3, StableAsset))
	expectAbort(t, errMissingIntent, func() {
		ConvertNativeToStable(strptr("1|1200000"))
	})

	setEnv(testAlice, 1_100_000)
	expectAbort(t, errMissingIntent, func() {
		ConvertNativeToStable(strptr("1|1200000"))
	})
}

func TestConvertSlippageBound(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	// quote is 2.011, budget only 2.0: reject before any funds move
	setEnv(testAlice, 1_100_000, transferIntent(2, NativeAsset))
	expectAbort(t, errSlippageExceeded, func() {
		ConvertNativeToStable(strptr("1|1200000"))
	})
	assert.Equal(t, int64(5_000), sdk.Mock.BalanceOf(testAlice, NativeAsset))
}

func TestConvertSwapFailure(t *testing.T) {
	setupContract(t)
	// reserves published but the venue rejects the call
	sdk.Mock.Contracts[testPoolID] = map[string]string{"reserves": "1000000|500000"}
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	setEnv(testAlice, 1_100_000, transferIntent(3, NativeAsset))
	expectAbort(t, errSwapFailed, func() {
		ConvertNativeToStable(strptr("1|1200000"))
	})
}

func TestContributeConverted(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)
	id := makeTestProject(t, testCreator, 100, 2_000_000)
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	// pledge 1.0 stable paying in native, budget 3.0
	setEnv(testAlice, 1_100_000, transferIntent(3, NativeAsset))
	Contribute(strptr(fmt.Sprintf("%d|1", id)))

	st := mustLoadProjectState(id)
	assert.Equal(t, Amount(1_000), st.RaisedFunds)
	assert.Equal(t, uint64(1), st.SupporterCount)
	assert.Equal(t, Amount(1_000), supporterFunds(id, sdk.Address(testAlice)))

	// the stable output landed in escrow, not with the supporter
	assert.Equal(t, int64(1_000), sdk.Mock.BalanceOf(testContractID, StableAsset))
	assert.Equal(t, int64(0), sdk.Mock.BalanceOf(testAlice, StableAsset))
	assert.Equal(t, int64(2_989), sdk.Mock.BalanceOf(testAlice, NativeAsset))
}

func TestContributeConvertedRefundable(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)
	id := makeTestProject(t, testCreator, 100, 2_000_000)
	sdk.Mock.Deposit(testAlice, NativeAsset, 5_000)

	setEnv(testAlice, 1_100_000, transferIntent(3, NativeAsset))
	Contribute(strptr(fmt.Sprintf("%d|1", id)))

	// refunds pay out in stable regardless of the contribution mode
	setEnv(testAlice, 2_000_000)
	ClaimRefund(strptr(UInt64ToString(id)))
	assert.Equal(t, int64(1_000), sdk.Mock.BalanceOf(testAlice, StableAsset))
	assert.Equal(t, Amount(0), escrowBalance(id))
}

func TestConvertZeroBudget(t *testing.T) {
	setupContract(t)
	installPool(t, 1_000_000, 500_000)

	setEnv(testAlice, 1_100_000, transferIntent(0, NativeAsset))
	expectAbort(t, errZeroNativeInput, func() {
		ConvertNativeToStable(strptr("1|1200000"))
	})
}
