package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfunder/sdk"
)

func TestContractConfigRoundTrip(t *testing.T) {
	in := &ContractConfig{
		Owner:        "hive:platform",
		FeeAccount:   "hive:fees",
		FeePercent:   7,
		PoolContract: "contract:pool",
	}
	out, err := decodeContractConfig(encodeContractConfig(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProjectMetaRoundTrip(t *testing.T) {
	in := &ProjectMeta{
		Creator:     "hive:creator",
		Name:        "Solar Farm",
		Description: "Community solar panels | with a pipe",
		MediaRef:    "ipfs://QmXyz",
		FundGoal:    123_456,
		Deadline:    2_000_000,
		CreatedAt:   1_000_000,
	}
	out, err := decodeProjectMeta(encodeProjectMeta(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProjectStateRoundTrip(t *testing.T) {
	in := &ProjectState{
		RaisedFunds:    99_999,
		SupporterCount: 42,
		Cancelled:      true,
		Disbursed:      false,
	}
	out, err := decodeProjectState(encodeProjectState(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeTruncatedRecord(t *testing.T) {
	full := encodeProjectMeta(&ProjectMeta{Creator: "hive:creator", Name: "n", Description: "d", MediaRef: "m"})
	_, err := decodeProjectMeta(full[:len(full)-4])
	assert.Error(t, err)

	_, err = decodeProjectState("")
	assert.Error(t, err)
}

func TestStorageKeysAreDistinct(t *testing.T) {
	keys := map[string]bool{}
	for id := uint64(1); id <= 300; id++ {
		for _, k := range []string{projectMetaKey(id), projectStateKey(id), projectEscrowKey(id)} {
			assert.False(t, keys[k], "duplicate key for id %d", id)
			keys[k] = true
		}
	}
	assert.NotEqual(t,
		supporterLedgerKey(1, sdk.Address("hive:alice")),
		supporterLedgerKey(2, sdk.Address("hive:alice")))
	assert.NotEqual(t,
		supporterLedgerKey(1, sdk.Address("hive:alice")),
		supporterLedgerKey(1, sdk.Address("hive:bob")))
}

func TestAmountJSONFormatting(t *testing.T) {
	// amounts render as plain JSON numbers in human units
	assert.Equal(t, `{"stableOut":1,"nativeIn":2.011}`, quoteJSON(1_000, 2_011))
	assert.Equal(t,
		`{"projectId":3,"address":"hive:alice","funds":12.5,"contributed":true}`,
		supporterJSON(3, "hive:alice", 12_500, true))
}

func TestAmountScaling(t *testing.T) {
	assert.Equal(t, Amount(1_500), FloatToAmount(1.5))
	assert.Equal(t, Amount(1), FloatToAmount(0.0005))
	assert.Equal(t, 1.5, AmountToFloat(1_500))
	assert.Equal(t, int64(1_500), AmountToInt64(1_500))
}
