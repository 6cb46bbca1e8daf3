package main

import (
	"fmt"

	"crowdfunder/sdk"
)

// Campaign registry operations. These back the wasm exports one to one and
// own every state transition; escrow mutators are reachable only from here.

// MakeProject registers a new campaign from name|description|mediaRef|fundGoal|deadline.
func MakeProject(payload *string) *string {
	requireInitialized()
	args := decodeMakeProjectArgs(payload)
	now := nowUnix()

	if args.Name == "" {
		sdk.Abort(errNameRequired)
	}
	if args.Description == "" {
		sdk.Abort(errDescriptionRequired)
	}
	if args.MediaRef == "" {
		sdk.Abort(errMediaRefRequired)
	}
	if len(args.Name) > MaxTextLength || len(args.Description) > MaxTextLength || len(args.MediaRef) > MaxTextLength {
		sdk.Abort(errTextTooLong)
	}
	if args.FundGoal <= 0 {
		sdk.Abort(errInvalidFundGoal)
	}
	if args.Deadline <= now {
		sdk.Abort(errTimeGoalNotFuture)
	}
	if args.Deadline > now+MaxTimeGoalSeconds {
		sdk.Abort(errTimeGoalTooFar)
	}

	id := nextProjectID()
	meta := &ProjectMeta{
		Creator:     getSenderAddress(),
		Name:        args.Name,
		Description: args.Description,
		MediaRef:    args.MediaRef,
		FundGoal:    args.FundGoal,
		Deadline:    args.Deadline,
		CreatedAt:   now,
	}
	saveProjectMeta(id, meta)
	saveProjectState(id, &ProjectState{})
	emitProjectMade(id, meta)
	return strptr("project " + UInt64ToString(id) + " created")
}

// Contribute adds funds to an open campaign from projectId|amount. The
// transfer.allow intent decides the mode: a stable-token intent pays the
// amount directly, a native-token intent routes through the currency
// converter with the intent limit as the slippage bound.
func Contribute(payload *string) *string {
	requireInitialized()
	args := decodeContributeArgs(payload)
	meta := mustLoadProjectMeta(args.ProjectID)
	st := mustLoadProjectState(args.ProjectID)
	now := nowUnix()

	switch projectStatus(meta, st, now) {
	case StatusOpen:
	case StatusCancelled:
		sdk.Abort(errProjectCancelled)
	default:
		sdk.Abort(errProjectNotOpen)
	}

	sender := getSenderAddress()
	if sender == meta.Creator {
		sdk.Abort(errSelfContribution)
	}
	if args.Amount <= 0 {
		sdk.Abort(errInvalidAmount)
	}

	ta := getFirstTransferAllow()
	if ta == nil {
		sdk.Abort(errMissingIntent)
	}

	var newSupporter bool
	var newRaised Amount
	switch ta.Token {
	case StableAsset:
		if FloatToAmount(ta.Limit) < args.Amount {
			sdk.Abort(errIntentBelowAmount)
		}
		newSupporter, newRaised = escrowCollectDirect(registryAuth{}, args.ProjectID, sender, args.Amount)
	case NativeAsset:
		maxNativeIn := FloatToAmount(ta.Limit)
		if maxNativeIn <= 0 {
			sdk.Abort(errZeroNativeInput)
		}
		nativeSpent := executeConversion(args.Amount, maxNativeIn, contractAddress(), sender)
		emitConversion(sender, args.Amount, maxNativeIn, nativeSpent)
		newSupporter, newRaised = escrowCreditConverted(registryAuth{}, args.ProjectID, sender, args.Amount)
	default:
		sdk.Abort(errMissingIntent)
	}

	st.RaisedFunds = newRaised
	if newSupporter {
		st.SupporterCount++
	}
	saveProjectState(args.ProjectID, st)
	emitContribution(args.ProjectID, sender, args.Amount, st.RaisedFunds, newSupporter, now)
	return strptr(fmt.Sprintf("contributed %d to project %d", args.Amount, args.ProjectID))
}

// Cancel closes an open campaign permanently. Creator only, and only while
// the campaign is still open. Escrowed funds stay claimable through refunds.
func Cancel(payload *string) *string {
	requireInitialized()
	id := parseUintField(unwrapPayload(payload), "project id")
	meta := mustLoadProjectMeta(id)
	st := mustLoadProjectState(id)
	now := nowUnix()

	sender := getSenderAddress()
	if sender != meta.Creator {
		sdk.Abort(errOnlyCreatorCancel)
	}
	if projectStatus(meta, st, now) != StatusOpen {
		sdk.Abort(errProjectNotOpen)
	}

	st.Cancelled = true
	saveProjectState(id, st)
	emitCancel(id, sender, meta, now)
	return strptr("project " + UInt64ToString(id) + " cancelled")
}

// Disburse pays out one or more funded campaigns to their creator, routing
// the platform fee cut to the fee account. Accepts id[;id...] and is
// all-or-nothing: every id is validated before any funds move.
func Disburse(payload *string) *string {
	requireInitialized()
	ids := parseIDListField(unwrapPayload(payload))
	cfg := loadContractConfig()
	now := nowUnix()
	sender := getSenderAddress()

	type pending struct {
		id   uint64
		meta *ProjectMeta
		st   *ProjectState
	}
	batch := make([]pending, 0, len(ids))
	for _, id := range ids {
		meta := mustLoadProjectMeta(id)
		st := mustLoadProjectState(id)
		if sender != meta.Creator {
			sdk.Abort(errOnlyCreatorDisburs)
		}
		if st.Disbursed {
			sdk.Abort(errAlreadyDisbursed)
		}
		if st.Cancelled {
			sdk.Abort(errProjectCancelled)
		}
		if now < meta.Deadline {
			sdk.Abort(errProjectStillOpen)
		}
		if st.RaisedFunds < meta.FundGoal {
			sdk.Abort(errGoalNotMet)
		}
		batch = append(batch, pending{id, meta, st})
	}

	var total Amount
	for _, p := range batch {
		payout, fee := escrowDisburse(registryAuth{}, p.id, p.meta.Creator, cfg.FeeAccount, cfg.FeePercent)
		p.st.Disbursed = true
		p.st.RaisedFunds = 0
		saveProjectState(p.id, p.st)
		emitDisburse(p.id, p.meta.Creator, payout, fee, now)
		total += payout
	}
	return strptr(fmt.Sprintf("disbursed %d project(s), payout %d", len(batch), total))
}

// ClaimRefund returns the caller's contributions from one or more failed or
// cancelled campaigns. Accepts id[;id...] and is all-or-nothing like
// Disburse.
func ClaimRefund(payload *string) *string {
	requireInitialized()
	ids := parseIDListField(unwrapPayload(payload))
	now := nowUnix()
	sender := getSenderAddress()

	type pending struct {
		id uint64
		st *ProjectState
	}
	batch := make([]pending, 0, len(ids))
	for _, id := range ids {
		meta := mustLoadProjectMeta(id)
		st := mustLoadProjectState(id)
		switch projectStatus(meta, st, now) {
		case StatusCancelled, StatusFailed:
		default:
			sdk.Abort(errRefundNotEligible)
		}
		if supporterFunds(id, sender) <= 0 {
			sdk.Abort(errNoFundsToRefund)
		}
		batch = append(batch, pending{id, st})
	}

	var total Amount
	for _, p := range batch {
		amount := escrowRefund(registryAuth{}, p.id, sender)
		p.st.RaisedFunds -= amount
		saveProjectState(p.id, p.st)
		emitRefund(p.id, sender, amount, p.st.RaisedFunds, now)
		total += amount
	}
	return strptr(fmt.Sprintf("refunded %d from %d project(s)", total, len(batch)))
}

// --- query surface ---

// GetProject returns one campaign as JSON, including its derived status.
func GetProject(payload *string) *string {
	requireInitialized()
	id := parseUintField(unwrapPayload(payload), "project id")
	meta := mustLoadProjectMeta(id)
	st := mustLoadProjectState(id)
	return strptr(projectJSON(id, meta, st, nowUnix()))
}

// GetAllProjects returns every campaign as a JSON array.
func GetAllProjects(_ *string) *string {
	requireInitialized()
	return strptr(projectListJSON(nowUnix()))
}

// GetSupporterFunds reports a supporter's refundable balance on a campaign
// from projectId|address.
func GetSupporterFunds(payload *string) *string {
	requireInitialized()
	id, addr := decodeSupporterQuery(payload)
	mustLoadProjectMeta(id)
	return strptr(supporterJSON(id, addr.String(), supporterFunds(id, addr), hasContributed(id, addr)))
}

// GetContractConfig returns the init-time platform settings as JSON.
func GetContractConfig(_ *string) *string {
	return strptr(configJSON(loadContractConfig()))
}
