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
Package bess implements the Best Effort Save State container: an
append-only block stream that rides behind an arbitrary, emulator
specific save state blob. The format never rewrites that blob, it only
appends self-describing records after it, anchored by an 8-byte footer
at the very end of the file. A BESS-aware reader finds the footer,
slices off the native context, and walks the blocks; a BESS-unaware
reader keeps working off the native part and never notices.
*/
package bess

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/xelalexv/gobess/pkg/bess/block"
)

// Magic is the footer magic: the ASCII bytes "BESS" read as a
// little-endian 32-bit integer.
var Magic = binary.LittleEndian.Uint32([]byte("BESS"))

// FooterLen is the size of the footer, which occupies the final bytes
// of a save state file.
const FooterLen = 8

// ErrBadMagic is returned when the trailing footer does not carry the
// BESS magic, i.e. the buffer does not end in BESS data.
var ErrBadMagic = errors.New("not a BESS save state: bad magic")

// RequiredError is returned when the builder finalizes without one of
// the mandatory blocks.
type RequiredError struct {
	Ident block.Ident
}

//
func (e *RequiredError) Error() string {
	return fmt.Sprintf("required block is missing: %s", e.Ident)
}

/*
	Document is one complete BESS artifact: the opaque context blob that
	precedes the block stream, the ordered blocks, and the footer. A
	document is immutable once built or decoded; modification means
	rebuilding. It is therefore safe to encode the same document from
	several goroutines.
*/
type Document struct {
	// opaque, host-defined context preceding the block stream
	ctx []byte
	// the blocks, in wire order, ending with END
	blx []*block.Block
	// the trailing footer
	end Footer
}

// Context returns the opaque context blob preceding the block stream.
func (doc *Document) Context() []byte {
	return doc.ctx
}

// Blocks returns the document's blocks in wire order.
func (doc *Document) Blocks() []*block.Block {
	return doc.blx
}

//
func (doc *Document) Footer() Footer {
	return doc.end
}

// Lookup returns the body of the first block with the given identifier,
// or nil if there is none.
func (doc *Document) Lookup(id block.Ident) block.Body {
	for _, b := range doc.blx {
		if b.Ident() == id {
			return b.Body()
		}
	}
	return nil
}

// EmulatorName returns the text of the NAME block, if present.
func (doc *Document) EmulatorName() (string, bool) {
	if b, ok := doc.Lookup(block.IdentName).(block.Name); ok {
		return string(b), true
	}
	return "", false
}

// Info returns the INFO block body, if present.
func (doc *Document) Info() (*block.Info, bool) {
	b, ok := doc.Lookup(block.IdentInfo).(*block.Info)
	return b, ok
}

// Core returns the CORE block body, if present.
func (doc *Document) Core() (*block.Core, bool) {
	b, ok := doc.Lookup(block.IdentCore).(*block.Core)
	return b, ok
}

/*
	Footer anchors the whole format. It is the last 8 bytes of the file:
	the offset at which the block region begins, which equals the length
	of the context blob, and the magic constant. Computed once at build
	time, read once at decode time, never changed.
*/
type Footer struct {
	// Start is the absolute offset where the block region begins.
	Start uint32
	// Magic must hold the BESS magic.
	Magic uint32
}
