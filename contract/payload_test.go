package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crowdfunder/sdk"
)

func TestUnwrapPayload(t *testing.T) {
	assert.Equal(t, "a|b", unwrapPayload(strptr("a|b")))
	// hosts sometimes wrap the payload in an extra quote layer
	assert.Equal(t, "a|b", unwrapPayload(strptr(`"a|b"`)))
	assert.Equal(t, "a|b", unwrapPayload(strptr("  a|b  ")))

	expectAbort(t, "payload required", func() {
		unwrapPayload(nil)
	})
	expectAbort(t, "payload required", func() {
		unwrapPayload(strptr(""))
	})
}

func TestParseIDListField(t *testing.T) {
	assert.Equal(t, []uint64{1}, parseIDListField("1"))
	assert.Equal(t, []uint64{1, 2, 3}, parseIDListField("1;2;3"))
	// commas work too, and blank entries are skipped
	assert.Equal(t, []uint64{4, 5}, parseIDListField("4, 5"))
	assert.Equal(t, []uint64{7}, parseIDListField("7;"))

	expectAbort(t, errEmptyIDList, func() {
		parseIDListField(" ; ")
	})
	expectAbort(t, "invalid project id", func() {
		parseIDListField("1;x")
	})
	expectAbort(t, errDuplicateID, func() {
		parseIDListField("1;2;1")
	})
}

func TestDecodeMakeProjectArgs(t *testing.T) {
	args := decodeMakeProjectArgs(strptr("Solar Farm| A description |ipfs://m|12.5|2000000"))
	assert.Equal(t, "Solar Farm", args.Name)
	assert.Equal(t, "A description", args.Description)
	assert.Equal(t, Amount(12_500), args.FundGoal)
	assert.Equal(t, int64(2_000_000), args.Deadline)

	// ISO deadlines are accepted alongside unix seconds
	args = decodeMakeProjectArgs(strptr("n|d|m|1|2026-09-01T00:00:00"))
	assert.Equal(t, int64(1_788_220_800), args.Deadline)

	expectAbort(t, "expected name|description|mediaRef|fundGoal|deadline", func() {
		decodeMakeProjectArgs(strptr("a|b|c|1"))
	})
	expectAbort(t, "invalid deadline", func() {
		decodeMakeProjectArgs(strptr("a|b|c|1|soon"))
	})
}

func TestDecodeContributeArgs(t *testing.T) {
	args := decodeContributeArgs(strptr("3|0.25"))
	assert.Equal(t, uint64(3), args.ProjectID)
	assert.Equal(t, Amount(250), args.Amount)

	expectAbort(t, "invalid amount", func() {
		decodeContributeArgs(strptr("3|lots"))
	})
}

func TestDecodeSupporterQuery(t *testing.T) {
	id, addr := decodeSupporterQuery(strptr("2|hive:alice"))
	assert.Equal(t, uint64(2), id)
	assert.Equal(t, sdk.Address("hive:alice"), addr)

	expectAbort(t, "invalid address", func() {
		decodeSupporterQuery(strptr("2|not-an-address"))
	})
}
