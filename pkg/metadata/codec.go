// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var errCompactOverflow = errors.New("compact integer overflows u32")

// reader wraps a SCALE decoder and keeps the first error, so that the
// metadata structures can be read field by field and checked once.
type reader struct {
	source  *bytes.Reader
	decoder *scale.Decoder
	err     error
}

func newReader(data []byte) *reader {
	source := bytes.NewReader(data)
	return &reader{
		source:  source,
		decoder: scale.NewDecoder(source),
	}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	b, err := r.decoder.ReadOneByte()
	if err != nil {
		r.fail(err)
	}
	return b
}

func (r *reader) fixed(n int) []byte {
	if r.err != nil || n == 0 {
		return []byte{}
	}
	buffer := make([]byte, n)
	if err := r.decoder.Read(buffer); err != nil {
		r.fail(err)
		return []byte{}
	}
	return buffer
}

func (r *reader) u32() uint32 {
	b := r.fixed(4)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) compact() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := types.DecodeCompact(*r.decoder)
	if err != nil {
		r.fail(err)
		return 0
	}
	if !v.IsUint64() || v.Uint64() > math.MaxUint32 {
		r.fail(fmt.Errorf("%w: %s", errCompactOverflow, v))
		return 0
	}
	return uint32(v.Uint64())
}

// length reads a compact collection length, bounded by the bytes left
// so corrupt input cannot trigger huge allocations.
func (r *reader) length() int {
	n := r.compact()
	if r.err == nil && int64(n) > int64(r.source.Len()) {
		r.fail(fmt.Errorf("collection length %d exceeds remaining %d bytes", n, r.source.Len()))
		return 0
	}
	return int(n)
}

func (r *reader) bytes() []byte {
	return r.fixed(r.length())
}

func (r *reader) str() string {
	return string(r.bytes())
}

func (r *reader) strs() []string {
	n := r.length()
	out := make([]string, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		out = append(out, r.str())
	}
	return out
}

func (r *reader) flag() bool {
	switch b := r.u8(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(fmt.Errorf("invalid option byte %d", b))
		return false
	}
}

func (r *reader) optionalStr() string {
	if r.flag() {
		return r.str()
	}
	return ""
}

func (r *reader) optionalCompact() *uint32 {
	if !r.flag() {
		return nil
	}
	v := r.compact()
	return &v
}

// writer mirrors reader for encoding.
type writer struct {
	buffer  bytes.Buffer
	encoder *scale.Encoder
	err     error
}

func newWriter() *writer {
	w := &writer{}
	w.encoder = scale.NewEncoder(&w.buffer)
	return w
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) u8(b uint8) {
	if w.err != nil {
		return
	}
	w.fail(w.encoder.PushByte(b))
}

func (w *writer) raw(b []byte) {
	if w.err != nil || len(b) == 0 {
		return
	}
	w.fail(w.encoder.Write(b))
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.raw(b[:])
}

func (w *writer) compact(v uint64) {
	if w.err != nil {
		return
	}
	w.fail(w.encoder.EncodeUintCompact(*new(big.Int).SetUint64(v)))
}

func (w *writer) bytes(b []byte) {
	w.compact(uint64(len(b)))
	w.raw(b)
}

func (w *writer) str(s string) {
	w.bytes([]byte(s))
}

func (w *writer) strs(s []string) {
	w.compact(uint64(len(s)))
	for _, item := range s {
		w.str(item)
	}
}

func (w *writer) flag(b bool) {
	if b {
		w.u8(1)
		return
	}
	w.u8(0)
}

func (w *writer) optionalStr(s string) {
	w.flag(s != "")
	if s != "" {
		w.str(s)
	}
}

func (w *writer) optionalCompact(v *uint32) {
	w.flag(v != nil)
	if v != nil {
		w.compact(uint64(*v))
	}
}
