package main

import "crowdfunder/sdk"

// Crowdfunding contract for the VSC network. Supporters fund campaigns in the
// stable asset; native-token contributions are converted through a
// constant-product pool on the way in. Funds sit in per-campaign escrow until
// the campaign either meets its goal (creator disburses, platform fee routed
// off the top) or fails (supporters claim refunds).

func main() {}

// ContractInit configures the platform once from
// feeAccount|feePercent|poolContract. The caller becomes the owner and the
// settings are immutable afterwards.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort(errAlreadyInitialized)
	}
	parts := splitPayload(payload, 3, "expected feeAccount|feePercent|poolContract")

	feeAccount := sdk.Address(parts[0])
	if parts[0] == "" || !feeAccount.IsValid() {
		sdk.Abort(errFeeAccountRequired)
	}
	feePercent := parseUintField(parts[1], "fee percent")
	if feePercent > MaxFeePercent {
		sdk.Abort(errInvalidFeePercent)
	}
	if parts[2] == "" {
		sdk.Abort(errPoolRequired)
	}

	cfg := &ContractConfig{
		Owner:        getSenderAddress(),
		FeeAccount:   feeAccount,
		FeePercent:   feePercent,
		PoolContract: parts[2],
	}
	saveContractConfig(cfg)
	emitInitEvent(cfg)
	return strptr("contract initialized")
}
