//go:build wasm

package main

// Wasm entry points. Thin shims only; all behavior lives in the plain
// functions so the host build shares them with tests.

//go:wasmexport contract_init
func contractInitExport(payload *string) *string {
	return ContractInit(payload)
}

//go:wasmexport project_create
func projectCreateExport(payload *string) *string {
	return MakeProject(payload)
}

//go:wasmexport project_contribute
func projectContributeExport(payload *string) *string {
	return Contribute(payload)
}

//go:wasmexport project_cancel
func projectCancelExport(payload *string) *string {
	return Cancel(payload)
}

//go:wasmexport project_disburse
func projectDisburseExport(payload *string) *string {
	return Disburse(payload)
}

//go:wasmexport project_refund
func projectRefundExport(payload *string) *string {
	return ClaimRefund(payload)
}

//go:wasmexport project_get_one
func projectGetOneExport(payload *string) *string {
	return GetProject(payload)
}

//go:wasmexport project_get_all
func projectGetAllExport(payload *string) *string {
	return GetAllProjects(payload)
}

//go:wasmexport project_supporter
func projectSupporterExport(payload *string) *string {
	return GetSupporterFunds(payload)
}

//go:wasmexport contract_get_config
func contractGetConfigExport(payload *string) *string {
	return GetContractConfig(payload)
}

//go:wasmexport swap_quote
func swapQuoteExport(payload *string) *string {
	return QuoteNativeInput(payload)
}

//go:wasmexport swap_convert
func swapConvertExport(payload *string) *string {
	return ConvertNativeToStable(payload)
}
