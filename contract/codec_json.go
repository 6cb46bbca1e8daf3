package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"
)

// JSON writers for the query surface. Hand-built with tinyjson's jwriter so
// the wasm binary stays free of reflection. Amounts are reported as floats in
// human units, timestamps as unix seconds.

// writeAmount emits an Amount as a human-unit JSON number. jwriter carries no
// float writer, so format through strconv.
func writeAmount(w *jwriter.Writer, v Amount) {
	w.RawString(strconv.FormatFloat(AmountToFloat(v), 'f', -1, 64))
}

func writeProjectJSON(w *jwriter.Writer, id uint64, m *ProjectMeta, st *ProjectState, now int64) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(id)
	w.RawString(`,"creator":`)
	w.String(m.Creator.String())
	w.RawString(`,"name":`)
	w.String(m.Name)
	w.RawString(`,"description":`)
	w.String(m.Description)
	w.RawString(`,"mediaRef":`)
	w.String(m.MediaRef)
	w.RawString(`,"fundGoal":`)
	writeAmount(w, m.FundGoal)
	w.RawString(`,"deadline":`)
	w.Int64(m.Deadline)
	w.RawString(`,"createdAt":`)
	w.Int64(m.CreatedAt)
	w.RawString(`,"raisedFunds":`)
	writeAmount(w, st.RaisedFunds)
	w.RawString(`,"supporterCount":`)
	w.Uint64(st.SupporterCount)
	w.RawString(`,"status":`)
	w.String(projectStatus(m, st, now).String())
	w.RawByte('}')
}

func projectJSON(id uint64, m *ProjectMeta, st *ProjectState, now int64) string {
	w := jwriter.Writer{}
	writeProjectJSON(&w, id, m, st, now)
	return jsonToString(&w)
}

func projectListJSON(now int64) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	total := projectCount()
	first := true
	for id := uint64(1); id <= total; id++ {
		m := loadProjectMeta(id)
		if m == nil {
			continue
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		writeProjectJSON(&w, id, m, mustLoadProjectState(id), now)
	}
	w.RawByte(']')
	return jsonToString(&w)
}

func configJSON(cfg *ContractConfig) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"owner":`)
	w.String(cfg.Owner.String())
	w.RawString(`,"feeAccount":`)
	w.String(cfg.FeeAccount.String())
	w.RawString(`,"feePercent":`)
	w.Uint64(cfg.FeePercent)
	w.RawString(`,"poolContract":`)
	w.String(cfg.PoolContract)
	w.RawString(`,"projectCount":`)
	w.Uint64(projectCount())
	w.RawByte('}')
	return jsonToString(&w)
}

func supporterJSON(id uint64, addr string, funds Amount, contributed bool) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"projectId":`)
	w.Uint64(id)
	w.RawString(`,"address":`)
	w.String(addr)
	w.RawString(`,"funds":`)
	writeAmount(&w, funds)
	w.RawString(`,"contributed":`)
	w.Bool(contributed)
	w.RawByte('}')
	return jsonToString(&w)
}

func quoteJSON(stableOut, nativeIn Amount) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"stableOut":`)
	writeAmount(&w, stableOut)
	w.RawString(`,"nativeIn":`)
	writeAmount(&w, nativeIn)
	w.RawByte('}')
	return jsonToString(&w)
}

func jsonToString(w *jwriter.Writer) string {
	b, err := w.BuildBytes()
	if err != nil {
		return "{}"
	}
	return string(b)
}
