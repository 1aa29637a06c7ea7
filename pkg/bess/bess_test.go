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

package bess

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xelalexv/gobess/pkg/bess/block"
	"github.com/xelalexv/gobess/pkg/bess/serde"
)

// dmgMMIO holds the DMG boot defaults of the memory-mapped registers.
var dmgMMIO = [block.MMIOLen]byte{
	0xff, 0x00, 0x7e, 0xff, 0xcf, 0x00, 0x00, 0xf8, // 0xff00
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xe1, // 0xff08
	0x00, 0x80, 0xf3, 0xc1, 0x87, 0xff, 0x00, 0x00, // 0xff10
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, // 0xff18
	0x00, 0x00, 0x00, 0x00, 0x77, 0xf3, 0x80, 0xff, // 0xff20
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff28
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xff30
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xff38
	0x91, 0x01, 0x00, 0x00, 0x99, 0x00, 0x00, 0xfc, // 0xff40
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, // 0xff48
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff50
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff58
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff60
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff68
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff70
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // 0xff78
}

//
func dmgCore() *block.Core {
	return &block.Core{
		Version: block.Version{Major: 1, Minor: 1},
		Model:   block.Model{'D', ' ', ' ', ' '},
		Reg: block.Registers{
			PC:   0x0100,
			AF:   0x01b0,
			BC:   0x0013,
			DE:   0x00d8,
			HL:   0x014d,
			SP:   0xfffe,
			IME:  true,
			IE:   0xe0,
			Exe:  block.Running,
			MMIO: dmgMMIO,
		},
		Mem: block.Locations{
			WRAM: block.Pointer{Len: 0x2000, Ptr: 0xa000},
			VRAM: block.Pointer{Len: 0x2000, Ptr: 0x8000},
			ERAM: block.Pointer{Len: 0x2000, Ptr: 0xc000},
			OAM:  block.Pointer{Len: 0x00a0, Ptr: 0xfe00},
			HRAM: block.Pointer{Len: 0x007f, Ptr: 0xff80},
		},
	}
}

//
func dmgDocument(t *testing.T) *Document {

	var title [16]byte
	copy(title[:], "BESS Testing Rom")

	doc, err := NewBuilder().
		Name("bess").
		Info(block.NewInfo(title, 0xabcd)).
		Core(dmgCore()).
		Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return doc
}

// referenceBytes is the expected encoding of the DMG document with an
// empty context blob.
func referenceBytes() []byte {

	ref := []byte{
		// NAME
		'N', 'A', 'M', 'E',
		0x04, 0x00, 0x00, 0x00,
		'b', 'e', 's', 's',
		// INFO
		'I', 'N', 'F', 'O',
		0x12, 0x00, 0x00, 0x00,
		'B', 'E', 'S', 'S', ' ', 'T', 'e', 's',
		't', 'i', 'n', 'g', ' ', 'R', 'o', 'm',
		0xcd, 0xab,
		// CORE
		'C', 'O', 'R', 'E',
		0xd0, 0x00, 0x00, 0x00,
		0x01, 0x00, // version.major
		0x01, 0x00, // version.minor
		'D', ' ', ' ', ' ', // model
		0x00, 0x01, // pc
		0xb0, 0x01, // af
		0x13, 0x00, // bc
		0xd8, 0x00, // de
		0x4d, 0x01, // hl
		0xfe, 0xff, // sp
		0x01,       // ime
		0xe0,       // ie
		0x00,       // execution
		0x00,       // reserved
	}

	ref = append(ref, dmgMMIO[:]...)

	ref = append(ref,
		0x00, 0x20, 0x00, 0x00, 0x00, 0xa0, 0x00, 0x00, // wram
		0x00, 0x20, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, // vram
		0x00, 0x20, 0x00, 0x00, 0x00, 0xc0, 0x00, 0x00, // eram
		0xa0, 0x00, 0x00, 0x00, 0x00, 0xfe, 0x00, 0x00, // oam
		0x7f, 0x00, 0x00, 0x00, 0x80, 0xff, 0x00, 0x00, // hram
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // bgp
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // obj
		// END
		'E', 'N', 'D', ' ',
		0x00, 0x00, 0x00, 0x00,
		// footer
		0x00, 0x00, 0x00, 0x00,
		'B', 'E', 'S', 'S',
	)

	return ref
}

func TestReferenceEncoding(t *testing.T) {

	got, err := dmgDocument(t).Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := referenceBytes()
	if !bytes.Equal(got, want) {
		t.Fatalf("encoding mismatch:\ngot  %x\nwant %x", got, want)
	}

	tail := []byte{0x00, 0x00, 0x00, 0x00, 'B', 'E', 'S', 'S'}
	if !bytes.Equal(got[len(got)-8:], tail) {
		t.Fatalf("footer mismatch: %x", got[len(got)-8:])
	}
}

func TestBuilderRequiresCore(t *testing.T) {

	_, err := NewBuilder().Name("bess").Build(nil)

	var req *RequiredError
	if !errors.As(err, &req) {
		t.Fatalf("expected RequiredError, got %v", err)
	}
	if req.Ident != block.IdentCore {
		t.Fatalf("expected missing CORE, got %s", req.Ident)
	}
}

func TestBuilderIsSingleUse(t *testing.T) {

	b := NewBuilder().Core(dmgCore())
	if _, err := b.Build(nil); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(nil); err == nil {
		t.Fatal("expected error on second build")
	}
}

func TestBuilderOrdering(t *testing.T) {

	var title [16]byte
	copy(title[:], "TETRIS")

	for _, c := range []struct {
		name, info bool
		want       []string
	}{
		{false, false, []string{"CORE", "XTRA", "END "}},
		{true, false, []string{"NAME", "CORE", "XTRA", "END "}},
		{false, true, []string{"INFO", "CORE", "XTRA", "END "}},
		{true, true, []string{"NAME", "INFO", "CORE", "XTRA", "END "}},
	} {

		b := NewBuilder().Core(dmgCore()).
			Block(block.NewUnknown(
				block.Ident{'X', 'T', 'R', 'A'}, []byte{1}))
		if c.name {
			b.Name("bess")
		}
		if c.info {
			b.Info(block.NewInfo(title, 0x1234))
		}

		doc, err := b.Build(nil)
		if err != nil {
			t.Fatalf("build (name=%t info=%t): %v", c.name, c.info, err)
		}

		if len(doc.Blocks()) != len(c.want) {
			t.Fatalf("expected %d blocks, got %d",
				len(c.want), len(doc.Blocks()))
		}
		for ix, id := range c.want {
			if got := doc.Blocks()[ix].Ident().String(); got != id {
				t.Fatalf("block %d: got %q, want %q", ix, got, id)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {

	var title [16]byte
	copy(title[:], "BESS Testing Rom")

	ctx := []byte("native save state bytes, opaque to the block stream")

	doc, err := NewBuilder().
		Name("bess").
		Info(block.NewInfo(title, 0xabcd)).
		Core(dmgCore()).
		Block(block.NewUnknown(
			block.Ident{'R', 'T', 'C', ' '}, []byte{1, 2, 3, 4})).
		Build(ctx)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	enc, err := doc.Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !bytes.Equal(dec.Context(), ctx) {
		t.Fatalf("context mismatch: %q", dec.Context())
	}
	if dec.Footer().Start != uint32(len(ctx)) {
		t.Fatalf("footer start: got %d, want %d",
			dec.Footer().Start, len(ctx))
	}

	if len(dec.Blocks()) != len(doc.Blocks()) {
		t.Fatalf("block count: got %d, want %d",
			len(dec.Blocks()), len(doc.Blocks()))
	}
	for ix, b := range doc.Blocks() {
		g := dec.Blocks()[ix]
		if g.Ident() != b.Ident() || g.Len() != b.Len() {
			t.Fatalf("block %d: got %s/%d, want %s/%d",
				ix, g.Ident(), g.Len(), b.Ident(), b.Len())
		}
	}

	if name, ok := dec.EmulatorName(); !ok || name != "bess" {
		t.Fatalf("name: %q %t", name, ok)
	}
	if info, ok := dec.Info(); !ok || info.Title() != "BESS Testing Rom" ||
		info.Checksum() != 0xabcd {
		t.Fatalf("info mismatch: %+v %t", info, ok)
	}
	if core, ok := dec.Core(); !ok || *core != *dmgCore() {
		t.Fatalf("core mismatch: %+v %t", core, ok)
	}
}

func TestIdempotentReencode(t *testing.T) {

	want := referenceBytes()

	doc, err := Decode(want)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, err := doc.Bytes()
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("re-encode drift:\ngot  %x\nwant %x", got, want)
	}
}

func TestDecodeTooShort(t *testing.T) {

	// smaller than the footer
	if _, err := Decode([]byte{1, 2, 3}); !errors.Is(err, serde.ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}

	// start offset beyond the block region
	buf := []byte{0xff, 0x00, 0x00, 0x00, 'B', 'E', 'S', 'S'}
	if _, err := Decode(buf); !errors.Is(err, serde.ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00, 'N', 'O', 'P', 'E'}
	if _, err := Decode(buf); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeBlocksAfterEnd(t *testing.T) {

	// trailing blocks between END and the footer are more blocks to
	// decode, not an error
	ref := referenceBytes()
	buf := append([]byte{}, ref[:len(ref)-8]...)
	buf = append(buf, 'W', 'E', 'I', 'R', 2, 0, 0, 0, 0xaa, 0xbb)
	buf = append(buf, ref[len(ref)-8:]...)

	doc, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	last := doc.Blocks()[len(doc.Blocks())-1]
	if last.Ident().String() != "WEIR" || last.Len() != 2 {
		t.Fatalf("trailing block not preserved: %s/%d",
			last.Ident(), last.Len())
	}

	// and re-encoding keeps it verbatim
	got, err := doc.Bytes()
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(got, buf) {
		t.Fatal("re-encode drift with trailing block")
	}
}

func TestDecodeTruncatedBlockRegion(t *testing.T) {

	// a block whose declared length exceeds the block region
	buf := []byte{
		'C', 'O', 'R', 'E', 0xd0, 0x00, 0x00, 0x00, // header only, no body
		0x00, 0x00, 0x00, 0x00, 'B', 'E', 'S', 'S',
	}
	if _, err := Decode(buf); !errors.Is(err, serde.ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}
