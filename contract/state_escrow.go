package main

import (
	"strconv"

	"crowdfunder/sdk"
)

// Per-campaign escrow sub-balances and the supporter ledger. Balances are
// stored as decimal strings of the scaled amount. The sum over all campaign
// escrow keys always equals the contract's stable holdings attributable to
// open campaigns.

func escrowBalance(id uint64) Amount {
	ptr := sdk.StateGetObject(projectEscrowKey(id))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, _ := strconv.ParseInt(*ptr, 10, 64)
	return Amount(v)
}

func setEscrowBalance(id uint64, v Amount) {
	stateSetIfChanged(projectEscrowKey(id), strconv.FormatInt(int64(v), 10))
}

func addEscrowFunds(id uint64, amount Amount) Amount {
	next := escrowBalance(id) + amount
	setEscrowBalance(id, next)
	return next
}

// removeEscrowFunds debits the campaign sub-balance, reporting false when the
// balance cannot cover the amount. Callers abort on false; no partial debits.
func removeEscrowFunds(id uint64, amount Amount) bool {
	bal := escrowBalance(id)
	if bal < amount {
		return false
	}
	setEscrowBalance(id, bal-amount)
	return true
}

// --- supporter ledger ---

func supporterFunds(id uint64, addr sdk.Address) Amount {
	ptr := sdk.StateGetObject(supporterLedgerKey(id, addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, _ := strconv.ParseInt(*ptr, 10, 64)
	return Amount(v)
}

// setSupporterFunds writes the cumulative contribution. Refunds write "0"
// instead of deleting so the key keeps recording that the address supported
// the campaign and the supporter count stays honest.
func setSupporterFunds(id uint64, addr sdk.Address, v Amount) {
	stateSetIfChanged(supporterLedgerKey(id, addr), strconv.FormatInt(int64(v), 10))
}

func hasContributed(id uint64, addr sdk.Address) bool {
	return sdk.StateGetObject(supporterLedgerKey(id, addr)) != nil
}
