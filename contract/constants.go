package main

import "crowdfunder/sdk"

// -----------------------------------------------------------------------------
// Assets
// -----------------------------------------------------------------------------

// StableAsset is the unit campaigns are funded in; NativeAsset is the chain
// currency supporters may pay with, converted through the pool contract.
const (
	StableAsset = sdk.AssetHbd
	NativeAsset = sdk.AssetHive
)

// validAssets lists the asset types accepted inside transfer.allow intents.
var validAssets = []string{StableAsset.String(), NativeAsset.String()}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTimeGoalSeconds caps how far in the future a campaign deadline may sit.
	MaxTimeGoalSeconds = 60 * 24 * 60 * 60
	// MaxTextLength limits the size of campaign text fields and media references.
	MaxTextLength = 500
	// MaxFeePercent bounds the platform fee fixed at init.
	MaxFeePercent = 100
)

// -----------------------------------------------------------------------------
// Pool contract conventions
// -----------------------------------------------------------------------------

const (
	// poolReservesKey is the state key the liquidity venue publishes its
	// constant-product reserves under, formatted nativeReserve|stableReserve.
	poolReservesKey = "reserves"
	// poolSwapMethod performs the exact-output swap on the venue.
	poolSwapMethod = "swap_exact_out"
	// poolFeePerMille is the venue's take per thousand units of input.
	poolFeePerMille = 3
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds the campaign counter; ids are 1-indexed and dense,
	// so the counter doubles as the campaign index.
	ProjectsCount = "count:proj"
	// ContractConfigKey stores the encoded ContractConfig.
	ContractConfigKey = "cfg"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kProjectMeta stores immutable campaign terms.
	kProjectMeta byte = 0x01
	// kProjectState stores mutable campaign accounting.
	kProjectState byte = 0x02
	// kProjectEscrow stores the per-campaign escrowed stable balance.
	kProjectEscrow byte = 0x03
	// kSupporterLedger stores cumulative per-(campaign,supporter) contributions.
	kSupporterLedger byte = 0x04
)
