package main

import "crowdfunder/sdk"

func isContractInitialized() bool {
	return sdk.StateGetObject(ContractConfigKey) != nil
}

// requireInitialized guards every export except contract_init.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort(errNotInitialized)
	}
}

func saveContractConfig(c *ContractConfig) {
	stateSetIfChanged(ContractConfigKey, encodeContractConfig(c))
}

func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil {
		sdk.Abort(errNotInitialized)
	}
	c, err := decodeContractConfig(*ptr)
	if err != nil {
		sdk.Abort("corrupt contract config")
	}
	return c
}
