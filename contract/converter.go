package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"crowdfunder/sdk"
)

// Currency converter. Swaps native tokens for an exact stable output against
// the constant-product pool contract configured at init. The caller bounds
// the native spend through the transfer.allow intent limit; any excess above
// the computed input is returned in the same call.

// poolReserves reads the venue's published reserves, formatted as
// nativeReserve|stableReserve in scaled integer units.
func poolReserves(pool string) (Amount, Amount) {
	ptr := sdk.ContractStateGet(pool, poolReservesKey)
	if ptr == nil {
		sdk.Abort(errNoPoolReserves)
	}
	parts := strings.Split(*ptr, "|")
	if len(parts) != 2 {
		sdk.Abort(errNoPoolReserves)
	}
	native, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	stable, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil || native <= 0 || stable <= 0 {
		sdk.Abort(errNoPoolReserves)
	}
	return Amount(native), Amount(stable)
}

// quoteExactOut computes the input needed for an exact output under the
// constant-product rule with the venue fee on the input side:
//
//	in = (rIn * out * 1000) / ((rOut - out) * (1000 - fee)) + 1
//
// Intermediate products overflow int64 at realistic reserves, so the math
// runs in big.Int. The +1 rounds up in the pool's favor.
func quoteExactOut(reserveIn, reserveOut, out Amount) Amount {
	if out >= reserveOut {
		sdk.Abort(errPoolLiquidity)
	}
	num := new(big.Int).Mul(big.NewInt(int64(reserveIn)), big.NewInt(int64(out)))
	num.Mul(num, big.NewInt(1000))
	den := new(big.Int).Mul(
		big.NewInt(int64(reserveOut-out)),
		big.NewInt(1000-poolFeePerMille),
	)
	in := num.Div(num, den)
	in.Add(in, big.NewInt(1))
	if !in.IsInt64() {
		sdk.Abort(errPoolLiquidity)
	}
	return Amount(in.Int64())
}

// executeConversion draws up to maxNativeIn from the caller, swaps for
// exactly stableOut paid to recipient, and refunds the unused native portion
// to refundTo. Returns the native amount actually spent.
func executeConversion(stableOut, maxNativeIn Amount, recipient, refundTo sdk.Address) Amount {
	cfg := loadContractConfig()
	reserveNative, reserveStable := poolReserves(cfg.PoolContract)
	required := quoteExactOut(reserveNative, reserveStable, stableOut)
	if required > maxNativeIn {
		sdk.Abort(errSlippageExceeded)
	}

	sdk.HiveDraw(AmountToInt64(maxNativeIn), NativeAsset)
	pool := sdk.Address(cfg.PoolContract)
	sdk.HiveTransfer(pool, AmountToInt64(required), NativeAsset)

	swapPayload := fmt.Sprintf("%d|%s", stableOut, recipient)
	if sdk.ContractCall(cfg.PoolContract, poolSwapMethod, swapPayload, nil) == nil {
		sdk.Abort(errSwapFailed)
	}

	if excess := maxNativeIn - required; excess > 0 {
		sdk.HiveTransfer(refundTo, AmountToInt64(excess), NativeAsset)
	}
	return required
}

// QuoteNativeInput prices an exact stable output against current pool
// reserves without moving funds. Payload is the stable amount.
func QuoteNativeInput(payload *string) *string {
	requireInitialized()
	stableOut := FloatToAmount(parseFloatField(unwrapPayload(payload), "stable output"))
	if stableOut <= 0 {
		sdk.Abort(errZeroStableOut)
	}
	cfg := loadContractConfig()
	reserveNative, reserveStable := poolReserves(cfg.PoolContract)
	return strptr(quoteJSON(stableOut, quoteExactOut(reserveNative, reserveStable, stableOut)))
}

// ConvertNativeToStable swaps for an exact stable output paid to the caller,
// from stableOut|deadline. The native budget comes from the transfer.allow
// intent limit; expired deadlines reject before any funds move.
func ConvertNativeToStable(payload *string) *string {
	requireInitialized()
	args := decodeConvertArgs(payload)
	if args.StableOut <= 0 {
		sdk.Abort(errZeroStableOut)
	}
	if nowUnix() >= args.Deadline {
		sdk.Abort(errDeadlineExpired)
	}

	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != NativeAsset {
		sdk.Abort(errMissingIntent)
	}
	maxNativeIn := FloatToAmount(ta.Limit)
	if maxNativeIn <= 0 {
		sdk.Abort(errZeroNativeInput)
	}

	sender := getSenderAddress()
	spent := executeConversion(args.StableOut, maxNativeIn, sender, sender)
	emitConversion(sender, args.StableOut, maxNativeIn, spent)
	return strptr(fmt.Sprintf("converted %d native to %d stable", spent, args.StableOut))
}
