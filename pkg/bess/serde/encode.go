/*
   GoBESS - Best Effort Save State container codec
   Copyright (c) 2023, Alexander Vollschwitz

   This file is part of GoBESS.

   GoBESS is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GoBESS is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GoBESS. If not, see <http://www.gnu.org/licenses/>.
*/

package serde

import (
	"bytes"
	"encoding/binary"
	"math"
)

//
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encoder appends the little-endian encoding of supported shapes to an
// in-memory buffer. Encoding a supported shape cannot fail; the fallible
// surface is on Value implementations, which may reject their own
// content before writing it.
type Encoder struct {
	buf bytes.Buffer
}

// Bytes returns the encoded bytes accumulated so far.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

//
func (e *Encoder) Len() int {
	return e.buf.Len()
}

//
func (e *Encoder) Bool(v bool) {
	if v {
		e.buf.WriteByte(1)
	} else {
		e.buf.WriteByte(0)
	}
}

//
func (e *Encoder) U8(v uint8) {
	e.buf.WriteByte(v)
}

//
func (e *Encoder) U16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

//
func (e *Encoder) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

//
func (e *Encoder) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

//
func (e *Encoder) I8(v int8) {
	e.U8(uint8(v))
}

//
func (e *Encoder) I16(v int16) {
	e.U16(uint16(v))
}

//
func (e *Encoder) I32(v int32) {
	e.U32(uint32(v))
}

//
func (e *Encoder) I64(v int64) {
	e.U64(uint64(v))
}

//
func (e *Encoder) F32(v float32) {
	e.U32(math.Float32bits(v))
}

//
func (e *Encoder) F64(v float64) {
	e.U64(math.Float64bits(v))
}

// Raw appends a byte span verbatim. The length is not written; the
// surrounding shape is responsible for making it recoverable.
func (e *Encoder) Raw(b []byte) {
	e.buf.Write(b)
}

// Text appends the bytes of a string verbatim, without a length prefix.
func (e *Encoder) Text(s string) {
	e.buf.WriteString(s)
}

// Tag appends a variant tag, using the narrowest of 8, 16, or 32 bits
// that holds the tag value. A zero-field variant writes nothing beyond
// its tag.
func (e *Encoder) Tag(tag uint32) {
	switch tagWidth(tag) {
	case 1:
		e.U8(uint8(tag))
	case 2:
		e.U16(uint16(tag))
	default:
		e.U32(tag)
	}
}

// Option marks nullable values as outside the protocol. The wire format
// has no way to state absence.
func (e *Encoder) Option() error {
	return ErrUnsupported
}

// Map marks associative maps as outside the protocol; only positional
// shapes have a deterministic layout.
func (e *Encoder) Map() error {
	return ErrUnsupported
}

// Rune marks single Unicode scalars as outside the protocol.
func (e *Encoder) Rune() error {
	return ErrUnsupported
}
