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
Package block implements the type-length-value records of the BESS
block stream. Each block on the wire is a four-letter ASCII identifier,
a 32-bit length counting body bytes only, and the body itself. Known
identifiers decode into their schema types; anything else is carried
through verbatim as an Unknown body, so a stream peppered with
extensions an implementation has never heard of still decodes cleanly.
*/
package block

import (
	"io"

	"github.com/xelalexv/gobess/pkg/bess/serde"
)

// Ident is the four-letter ASCII tag naming a block kind. Shorter names
// are padded with spaces.
type Ident [4]byte

//
var (
	IdentName = Ident{'N', 'A', 'M', 'E'}
	IdentInfo = Ident{'I', 'N', 'F', 'O'}
	IdentCore = Ident{'C', 'O', 'R', 'E'}
	IdentEnd  = Ident{'E', 'N', 'D', ' '}
)

//
func (id Ident) String() string {
	return string(id[:])
}

// Body is the capability every block payload provides: a stable
// identifier for its kind, its own encoded byte length, its wire
// encoding, and a human-readable rendering.
type Body interface {
	//
	Ident() Ident

	// Len returns the encoded length of the body in bytes, excluding
	// the block header.
	Len() uint32

	// Encode appends the body's wire encoding to e.
	Encode(e *serde.Encoder) error

	// Emit emits a human-readable rendering of the body
	Emit(w io.Writer)
}

//
func New(body Body) *Block {
	return &Block{
		head: Header{Ident: body.Ident(), Len: body.Len()},
		body: body,
	}
}

// Block owns a header and the body it was derived from. The header is
// recomputed from the body on construction and never mutated, so
// head.Len always equals the body's encoded length.
type Block struct {
	head Header
	body Body
}

//
func (b *Block) Ident() Ident {
	return b.head.Ident
}

//
func (b *Block) Len() uint32 {
	return b.head.Len
}

//
func (b *Block) Body() Body {
	return b.body
}

//
func (b *Block) Emit(w io.Writer) {
	b.body.Emit(w)
}

// Encode writes identifier, length, and body back to back.
func (b *Block) Encode(e *serde.Encoder) error {
	b.head.encode(e)
	return b.body.Encode(e)
}

// Header precedes each block body on the wire.
type Header struct {
	// Ident is the unique identifier specifying the block type.
	Ident Ident
	// Len is the length of the block in bytes, excluding this header.
	Len uint32
}

//
func (h *Header) encode(e *serde.Encoder) {
	e.Raw(h.Ident[:])
	e.U32(h.Len)
}

//
func decodeHeader(d *serde.Decoder) (Header, error) {
	var h Header
	b, err := d.Raw(len(h.Ident))
	if err != nil {
		return h, err
	}
	copy(h.Ident[:], b)
	h.Len, err = d.U32()
	return h, err
}

/*
	Decode reads one block from the cursor: an 8-byte header, then
	exactly header.Len body bytes, handed to the decoder registered for
	the identifier. An identifier with no registered decoder yields an
	Unknown body that keeps the raw bytes unchanged, which is what makes
	the stream safe to extend: a reader can always skip what it does not
	understand without losing its place.
*/
func Decode(d *serde.Decoder) (*Block, error) {

	head, err := decodeHeader(d)
	if err != nil {
		return nil, err
	}

	raw, err := d.Raw(int(head.Len))
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(head.Ident, serde.NewDecoder(raw), raw)
	if err != nil {
		return nil, err
	}

	return New(body), nil
}

// decodeBody dispatches on the block identifier. The set of known kinds
// is closed; extension happens through Unknown pass-through, not
// through runtime registration.
func decodeBody(id Ident, d *serde.Decoder, raw []byte) (Body, error) {

	switch id {

	case IdentName:
		return decodeName(d)

	case IdentInfo:
		return decodeInfo(d)

	case IdentCore:
		return decodeCore(d)

	case IdentEnd:
		return End{}, nil

	default:
		return &Unknown{ident: id, data: raw}, nil
	}
}
