package main

import (
	"strconv"
	"strings"

	"crowdfunder/sdk"
)

// Payloads are pipe-delimited field lists. Hosts sometimes hand the payload
// wrapped in an extra pair of quotes, so unwrap strips one layer first.

func unwrapPayload(payload *string) string {
	if payload == nil {
		sdk.Abort("payload required")
	}
	p := strings.TrimSpace(*payload)
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		p = p[1 : len(p)-1]
	}
	if p == "" {
		sdk.Abort("payload required")
	}
	return p
}

// splitPayload unwraps and splits on '|', aborting with msg unless exactly
// want fields came through. Fields are returned trimmed.
func splitPayload(payload *string, want int, msg string) []string {
	parts := strings.Split(unwrapPayload(payload), "|")
	if len(parts) != want {
		sdk.Abort(msg)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseUintField(field, name string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
	if err != nil {
		sdk.Abort("invalid " + name)
	}
	return v
}

func parseFloatField(field, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		sdk.Abort("invalid " + name)
	}
	return v
}

// parseIDListField accepts ids joined by ';' or ',' and aborts on an empty,
// malformed or duplicate-carrying list. Rejecting duplicates up front keeps
// the batch preconditions honest: a repeated id would pass validation twice
// before the first mutation flips its state.
func parseIDListField(field string) []uint64 {
	field = strings.ReplaceAll(field, ",", ";")
	parts := strings.Split(field, ";")
	ids := make([]uint64, 0, len(parts))
	seen := make(map[uint64]bool, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id := parseUintField(part, "project id")
		if seen[id] {
			sdk.Abort(errDuplicateID)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		sdk.Abort(errEmptyIDList)
	}
	return ids
}

// decodeMakeProjectArgs parses name|description|mediaRef|fundGoal|deadline.
// The deadline accepts unix seconds or an ISO timestamp.
func decodeMakeProjectArgs(payload *string) *MakeProjectArgs {
	parts := strings.Split(unwrapPayload(payload), "|")
	if len(parts) != 5 {
		sdk.Abort("expected name|description|mediaRef|fundGoal|deadline")
	}
	deadline, ok := parseTimestamp(parts[4])
	if !ok {
		sdk.Abort("invalid deadline")
	}
	return &MakeProjectArgs{
		Name:        strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		MediaRef:    strings.TrimSpace(parts[2]),
		FundGoal:    FloatToAmount(parseFloatField(parts[3], "fund goal")),
		Deadline:    deadline,
	}
}

// decodeContributeArgs parses projectId|amount.
func decodeContributeArgs(payload *string) *ContributeArgs {
	parts := strings.Split(unwrapPayload(payload), "|")
	if len(parts) != 2 {
		sdk.Abort("expected projectId|amount")
	}
	return &ContributeArgs{
		ProjectID: parseUintField(parts[0], "project id"),
		Amount:    FloatToAmount(parseFloatField(parts[1], "amount")),
	}
}

// decodeConvertArgs parses stableOut|deadline.
func decodeConvertArgs(payload *string) *ConvertArgs {
	parts := strings.Split(unwrapPayload(payload), "|")
	if len(parts) != 2 {
		sdk.Abort("expected stableOut|deadline")
	}
	deadline, ok := parseTimestamp(parts[1])
	if !ok {
		sdk.Abort("invalid deadline")
	}
	return &ConvertArgs{
		StableOut: FloatToAmount(parseFloatField(parts[0], "stable output")),
		Deadline:  deadline,
	}
}

// decodeSupporterQuery parses projectId|address.
func decodeSupporterQuery(payload *string) (uint64, sdk.Address) {
	parts := strings.Split(unwrapPayload(payload), "|")
	if len(parts) != 2 {
		sdk.Abort("expected projectId|address")
	}
	addr := sdk.Address(strings.TrimSpace(parts[1]))
	if !addr.IsValid() {
		sdk.Abort("invalid address")
	}
	return parseUintField(parts[0], "project id"), addr
}
