package main

import (
	"math"

	"crowdfunder/sdk"
)

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ProjectStatus captures a campaign's lifecycle. The five states are mutually
// exclusive and exhaustive; transitions are one-directional.
type ProjectStatus uint8

const (
	StatusOpen        ProjectStatus = 0
	StatusCancelled   ProjectStatus = 1
	StatusFailed      ProjectStatus = 2
	StatusDisbursable ProjectStatus = 3
	StatusSucceeded   ProjectStatus = 4
)

// String prints the status as lower-case text for events and queries.
func (ps ProjectStatus) String() string {
	switch ps {
	case StatusOpen:
		return "open"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	case StatusDisbursable:
		return "disbursable"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "unspecified"
	}
}

// ContractConfig is written once at contract_init and immutable afterwards.
type ContractConfig struct {
	Owner        sdk.Address
	FeeAccount   sdk.Address
	FeePercent   uint64
	PoolContract string
}

// ProjectMeta stores a campaign's immutable terms.
type ProjectMeta struct {
	Creator     sdk.Address
	Name        string
	Description string
	MediaRef    string
	FundGoal    Amount
	Deadline    int64
	CreatedAt   int64
}

// ProjectState tracks the mutable accounting of a campaign. RaisedFunds must
// always equal the campaign's escrow sub-balance and the sum of its supporter
// ledger entries.
type ProjectState struct {
	RaisedFunds    Amount
	SupporterCount uint64
	Cancelled      bool
	Disbursed      bool
}

type MakeProjectArgs struct {
	Name        string
	Description string
	MediaRef    string
	FundGoal    Amount
	Deadline    int64
}

type ContributeArgs struct {
	ProjectID uint64
	Amount    Amount
}

type ConvertArgs struct {
	StableOut Amount
	Deadline  int64
}

// projectStatus derives the lifecycle state lazily from stored fields and the
// current time; the deadline boundary is exclusive for openness.
func projectStatus(meta *ProjectMeta, st *ProjectState, now int64) ProjectStatus {
	switch {
	case st.Cancelled:
		return StatusCancelled
	case st.Disbursed:
		return StatusSucceeded
	case now < meta.Deadline:
		return StatusOpen
	case st.RaisedFunds >= meta.FundGoal:
		return StatusDisbursable
	default:
		return StatusFailed
	}
}
