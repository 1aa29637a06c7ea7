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

/*
Package serde implements the structured value protocol underneath the
BESS block stream. It moves booleans, fixed-width integers, floats, raw
byte spans, and text between in-memory values and their little-endian
wire encoding, with no padding, no alignment, and no self-describing
metadata. Composite shapes are transcoded positionally: the caller walks
its fields in declaration order and invokes one Encoder or Decoder
method per leaf. Span lengths are never written to the wire; the
surrounding shape supplies them.
*/
package serde

import (
	"errors"
)

//
var (
	// ErrTooShort is returned when decoding runs out of input before the
	// current shape is complete.
	ErrTooShort = errors.New("buffer is too short")

	// ErrTooLarge is returned when a length or offset does not fit its
	// fixed-width wire field.
	ErrTooLarge = errors.New("buffer is too large")

	// ErrUnsupported is returned for shapes the wire format cannot carry.
	ErrUnsupported = errors.New("unsupported type")
)

// Value is the capability shared by everything the protocol can move:
// a value that writes itself to an Encoder and reads itself back from
// a Decoder, field by field, in declaration order.
type Value interface {
	Encode(e *Encoder) error
	Decode(d *Decoder) error
}

// tagWidth yields the wire width of a variant tag. Tags are written as
// narrow as their value allows.
func tagWidth(tag uint32) int {
	switch {
	case tag <= 0xff:
		return 1
	case tag <= 0xffff:
		return 2
	default:
		return 4
	}
}
