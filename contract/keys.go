package main

import "crowdfunder/sdk"

// Storage keys are a one-byte record prefix followed by the campaign id packed
// little-endian. Fixed-width keys keep records of one kind contiguous in the
// host kv and make the id recoverable without parsing.

func packU64LE(id uint64) [8]byte {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(id >> (8 * i))
	}
	return b
}

func packedKey(prefix byte, id uint64) string {
	b := packU64LE(id)
	key := make([]byte, 9)
	key[0] = prefix
	copy(key[1:], b[:])
	return string(key)
}

func projectMetaKey(id uint64) string {
	return packedKey(kProjectMeta, id)
}

func projectStateKey(id uint64) string {
	return packedKey(kProjectState, id)
}

func projectEscrowKey(id uint64) string {
	return packedKey(kProjectEscrow, id)
}

// supporterLedgerKey appends the supporter address after the packed id. The
// key existing at all means the address contributed at least once, even after
// a refund zeroed the value.
func supporterLedgerKey(id uint64, addr sdk.Address) string {
	return packedKey(kSupporterLedger, id) + addr.String()
}
