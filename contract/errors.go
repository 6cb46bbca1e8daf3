package main

// Abort message vocabulary. Messages are stable strings: off-chain observers
// and tests match on them, so treat any change as a breaking one.
const (
	errAlreadyInitialized = "contract already initialized"
	errNotInitialized     = "contract not initialized"
	errInvalidFeePercent  = "invalid fee percent"
	errPoolRequired       = "pool contract required"
	errFeeAccountRequired = "fee account required"

	errNameRequired        = "name required"
	errDescriptionRequired = "description required"
	errMediaRefRequired    = "media reference required"
	errTextTooLong         = "text field too long"
	errInvalidFundGoal     = "invalid fund goal"
	errTimeGoalNotFuture   = "time goal must be in the future"
	errTimeGoalTooFar      = "time goal must be within 60 days"

	errProjectNotFound    = "project not found"
	errProjectNotOpen     = "project not open"
	errProjectCancelled   = "project cancelled"
	errSelfContribution   = "creators cannot fund their own project"
	errInvalidAmount      = "invalid amount"
	errMissingIntent      = "missing transfer intent"
	errIntentBelowAmount  = "intent limit below amount"
	errOnlyCreatorCancel  = "only creator can cancel"
	errOnlyCreatorDisburs = "only creator can disburse"
	errProjectStillOpen   = "project still open"
	errGoalNotMet         = "funding goal not met"
	errAlreadyDisbursed   = "already disbursed"
	errRefundNotEligible  = "refund not eligible"
	errNoFundsToRefund    = "no funds to refund"
	errEmptyIDList        = "empty id list"
	errDuplicateID        = "duplicate id in list"

	errZeroStableOut     = "stable output must be greater than zero"
	errZeroNativeInput   = "zero native input"
	errDeadlineExpired   = "deadline expired"
	errSlippageExceeded  = "slippage exceeded"
	errNoPoolReserves    = "pool reserves unavailable"
	errPoolLiquidity     = "insufficient pool liquidity"
	errSwapFailed        = "swap execution failed"
	errEscrowUnderfunded = "escrow balance below requested amount"
)
