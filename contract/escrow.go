package main

import "crowdfunder/sdk"

// Escrow fund custody. All mutators are unexported and take a registryAuth
// token, so the only code path into campaign funds runs through the registry
// operations in this package. There is no wasm export touching escrow
// directly.

// registryAuth is the capability the registry hands to escrow mutators.
type registryAuth struct{}

// escrowCollectDirect draws stable tokens from the supporter into the
// contract and credits the campaign sub-balance and supporter ledger.
// Returns whether the supporter is new and the campaign's raised total.
func escrowCollectDirect(_ registryAuth, id uint64, supporter sdk.Address, amount Amount) (bool, Amount) {
	sdk.HiveDraw(AmountToInt64(amount), StableAsset)
	return escrowCredit(id, supporter, amount)
}

// escrowCreditConverted records stable funds the converter already deposited
// into the contract on the supporter's behalf. No draw happens here.
func escrowCreditConverted(_ registryAuth, id uint64, supporter sdk.Address, amount Amount) (bool, Amount) {
	return escrowCredit(id, supporter, amount)
}

func escrowCredit(id uint64, supporter sdk.Address, amount Amount) (bool, Amount) {
	newSupporter := !hasContributed(id, supporter)
	setSupporterFunds(id, supporter, supporterFunds(id, supporter)+amount)
	newBalance := addEscrowFunds(id, amount)
	return newSupporter, newBalance
}

// escrowDisburse pays the campaign balance out: the platform fee to the fee
// account, the remainder to the creator. Zeroes the sub-balance. The fee is
// raised*feePercent/100 with integer truncation, so the creator gets any
// rounding dust.
func escrowDisburse(_ registryAuth, id uint64, creator, feeAccount sdk.Address, feePercent uint64) (Amount, Amount) {
	raised := escrowBalance(id)
	fee := raised * Amount(feePercent) / 100
	payout := raised - fee
	if !removeEscrowFunds(id, raised) {
		sdk.Abort(errEscrowUnderfunded)
	}
	if fee > 0 {
		sdk.HiveTransfer(feeAccount, AmountToInt64(fee), StableAsset)
	}
	if payout > 0 {
		sdk.HiveTransfer(creator, AmountToInt64(payout), StableAsset)
	}
	return payout, fee
}

// escrowRefund returns the supporter's full ledger entry and debits the
// campaign sub-balance. The ledger entry is zeroed but the key stays.
func escrowRefund(_ registryAuth, id uint64, supporter sdk.Address) Amount {
	amount := supporterFunds(id, supporter)
	if amount <= 0 {
		sdk.Abort(errNoFundsToRefund)
	}
	if !removeEscrowFunds(id, amount) {
		sdk.Abort(errEscrowUnderfunded)
	}
	setSupporterFunds(id, supporter, 0)
	sdk.HiveTransfer(supporter, AmountToInt64(amount), StableAsset)
	return amount
}
