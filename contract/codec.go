package main

import (
	"encoding/binary"
	"errors"

	"crowdfunder/sdk"
)

// Deterministic binary codec for state records. Integers are big-endian,
// strings are varint-length-prefixed, bools are a single byte. Records never
// shrink fields, only append, so older records stay readable.

type binWriter struct {
	buf []byte
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

func (w *binWriter) writeString(s string) {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	w.buf = append(w.buf, lenBuf[:n]...)
	w.buf = append(w.buf, s...)
}

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *binWriter) String() string {
	return string(w.buf)
}

var errShortRecord = errors.New("record truncated")

type binReader struct {
	buf []byte
	pos int
	err error
}

func newBinReader(s string) *binReader {
	return &binReader{buf: []byte(s)}
}

func (r *binReader) readUint64() uint64 {
	if r.err != nil {
		return 0
	}
	if r.pos+8 > len(r.buf) {
		r.err = errShortRecord
		return 0
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

func (r *binReader) readInt64() int64 {
	return int64(r.readUint64())
}

func (r *binReader) readAmount() Amount {
	return Amount(r.readInt64())
}

func (r *binReader) readString() string {
	if r.err != nil {
		return ""
	}
	n, sz := binary.Uvarint(r.buf[r.pos:])
	if sz <= 0 {
		r.err = errShortRecord
		return ""
	}
	r.pos += sz
	if r.pos+int(n) > len(r.buf) {
		r.err = errShortRecord
		return ""
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s
}

func (r *binReader) readBool() bool {
	if r.err != nil {
		return false
	}
	if r.pos >= len(r.buf) {
		r.err = errShortRecord
		return false
	}
	v := r.buf[r.pos] != 0
	r.pos++
	return v
}

// --- ContractConfig ---

func encodeContractConfig(c *ContractConfig) string {
	w := binWriter{}
	w.writeString(c.Owner.String())
	w.writeString(c.FeeAccount.String())
	w.writeUint64(c.FeePercent)
	w.writeString(c.PoolContract)
	return w.String()
}

func decodeContractConfig(s string) (*ContractConfig, error) {
	r := newBinReader(s)
	c := &ContractConfig{
		Owner:      sdk.Address(r.readString()),
		FeeAccount: sdk.Address(r.readString()),
		FeePercent: r.readUint64(),
	}
	c.PoolContract = r.readString()
	if r.err != nil {
		return nil, r.err
	}
	return c, nil
}

// --- ProjectMeta ---

func encodeProjectMeta(m *ProjectMeta) string {
	w := binWriter{}
	w.writeString(m.Creator.String())
	w.writeString(m.Name)
	w.writeString(m.Description)
	w.writeString(m.MediaRef)
	w.writeAmount(m.FundGoal)
	w.writeInt64(m.Deadline)
	w.writeInt64(m.CreatedAt)
	return w.String()
}

func decodeProjectMeta(s string) (*ProjectMeta, error) {
	r := newBinReader(s)
	m := &ProjectMeta{
		Creator:     sdk.Address(r.readString()),
		Name:        r.readString(),
		Description: r.readString(),
		MediaRef:    r.readString(),
		FundGoal:    r.readAmount(),
		Deadline:    r.readInt64(),
		CreatedAt:   r.readInt64(),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// --- ProjectState ---

func encodeProjectState(st *ProjectState) string {
	w := binWriter{}
	w.writeAmount(st.RaisedFunds)
	w.writeUint64(st.SupporterCount)
	w.writeBool(st.Cancelled)
	w.writeBool(st.Disbursed)
	return w.String()
}

func decodeProjectState(s string) (*ProjectState, error) {
	r := newBinReader(s)
	st := &ProjectState{
		RaisedFunds:    r.readAmount(),
		SupporterCount: r.readUint64(),
		Cancelled:      r.readBool(),
		Disbursed:      r.readBool(),
	}
	if r.err != nil {
		return nil, r.err
	}
	return st, nil
}
