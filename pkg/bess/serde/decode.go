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
	"encoding/binary"
	"fmt"
	"math"
)

//
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Decoder is a cursor over an in-memory buffer, consuming little-endian
// encodings of supported shapes. Every method fails with ErrTooShort
// when fewer bytes remain than the requested shape needs; the cursor is
// not advanced in that case.
type Decoder struct {
	buf []byte
	pos int
}

// Remaining reports how many bytes are left to decode.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

//
func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrTooShort
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// Bool decodes one byte as a boolean; anything other than 0 or 1 is
// malformed input.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %#02x", v)
	}
}

//
func (d *Decoder) U8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

//
func (d *Decoder) U16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

//
func (d *Decoder) U32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

//
func (d *Decoder) U64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

//
func (d *Decoder) I8() (int8, error) {
	v, err := d.U8()
	return int8(v), err
}

//
func (d *Decoder) I16() (int16, error) {
	v, err := d.U16()
	return int16(v), err
}

//
func (d *Decoder) I32() (int32, error) {
	v, err := d.U32()
	return int32(v), err
}

//
func (d *Decoder) I64() (int64, error) {
	v, err := d.U64()
	return int64(v), err
}

//
func (d *Decoder) F32() (float32, error) {
	v, err := d.U32()
	return math.Float32frombits(v), err
}

//
func (d *Decoder) F64() (float64, error) {
	v, err := d.U64()
	return math.Float64frombits(v), err
}

// Raw decodes a byte span of the given length. The returned slice is an
// independent copy, safe to retain after the input buffer is reused.
func (d *Decoder) Raw(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b)
	return ret, nil
}

// Text decodes a string of the given byte length.
func (d *Decoder) Text(n int) (string, error) {
	b, err := d.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Tag decodes a variant tag. The width is determined by the highest tag
// the variant set defines, which is the width the encoder chose for any
// member of that set.
func (d *Decoder) Tag(max uint32) (uint32, error) {
	switch tagWidth(max) {
	case 1:
		v, err := d.U8()
		return uint32(v), err
	case 2:
		v, err := d.U16()
		return uint32(v), err
	default:
		return d.U32()
	}
}

// Option marks nullable values as outside the protocol.
func (d *Decoder) Option() error {
	return ErrUnsupported
}

// Map marks associative maps as outside the protocol.
func (d *Decoder) Map() error {
	return ErrUnsupported
}

// Rune marks single Unicode scalars as outside the protocol.
func (d *Decoder) Rune() error {
	return ErrUnsupported
}
