package main

import (
	"fmt"

	"crowdfunder/sdk"
)

// Event stream. Every committed mutation emits exactly one pipe-delimited log
// line with a two-letter tag; off-chain indexers rebuild campaign history from
// these. Amounts are logged in scaled integer units.

func emitInitEvent(cfg *ContractConfig) {
	sdk.Log(fmt.Sprintf("in|fee:%s|pct:%d|pool:%s",
		cfg.FeeAccount, cfg.FeePercent, cfg.PoolContract))
}

func emitProjectMade(id uint64, m *ProjectMeta) {
	sdk.Log(fmt.Sprintf("pm|id:%d|by:%s|name:%s|desc:%s|media:%s|goal:%d|deadline:%d|ts:%d",
		id, m.Creator, m.Name, m.Description, m.MediaRef, m.FundGoal, m.Deadline, m.CreatedAt))
}

func emitContribution(id uint64, by sdk.Address, amount, raised Amount, newSupporter bool, ts int64) {
	sdk.Log(fmt.Sprintf("co|id:%d|by:%s|amt:%d|raised:%d|new:%t|ts:%d",
		id, by, amount, raised, newSupporter, ts))
}

func emitCancel(id uint64, by sdk.Address, m *ProjectMeta, ts int64) {
	sdk.Log(fmt.Sprintf("cx|id:%d|by:%s|goal:%d|deadline:%d|ts:%d",
		id, by, m.FundGoal, m.Deadline, ts))
}

func emitDisburse(id uint64, to sdk.Address, payout, fee Amount, ts int64) {
	sdk.Log(fmt.Sprintf("db|id:%d|to:%s|amt:%d|fee:%d|ts:%d",
		id, to, payout, fee, ts))
}

func emitRefund(id uint64, to sdk.Address, amount, raised Amount, ts int64) {
	sdk.Log(fmt.Sprintf("rf|id:%d|to:%s|amt:%d|raised:%d|ts:%d",
		id, to, amount, raised, ts))
}

func emitConversion(by sdk.Address, stableOut, maxNativeIn, nativeSpent Amount) {
	sdk.Log(fmt.Sprintf("sw|by:%s|out:%d|maxin:%d|in:%d",
		by, stableOut, maxNativeIn, nativeSpent))
}
