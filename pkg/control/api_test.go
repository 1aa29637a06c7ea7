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

package control

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xelalexv/gobess/pkg/bess"
	"github.com/xelalexv/gobess/pkg/bess/block"
)

//
func testState(t *testing.T, ctx []byte) []byte {

	var title [16]byte
	copy(title[:], "BESS Testing Rom")

	core := &block.Core{
		Version: block.Version{Major: 1, Minor: 1},
		Model:   block.Model{'G', 'D', ' ', ' '},
		Reg:     block.Registers{PC: 0x0100, SP: 0xfffe, Exe: block.Running},
		Mem: block.Locations{
			WRAM: block.Pointer{Len: 0x2000, Ptr: 0xa000},
		},
	}

	doc, err := bess.NewBuilder().
		Name("bess").
		Info(block.NewInfo(title, 0xabcd)).
		Core(core).
		Build(ctx)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	buf, err := doc.Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf
}

func TestInspect(t *testing.T) {

	a := &api{}
	ctx := []byte("native part")

	req := httptest.NewRequest(
		"POST", "/inspect", bytes.NewReader(testState(t, ctx)))
	rec := httptest.NewRecorder()

	a.inspect(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var l Listing
	if err := json.NewDecoder(rec.Body).Decode(&l); err != nil {
		t.Fatalf("reply not JSON: %v", err)
	}

	if l.ContextBytes != len(ctx) {
		t.Fatalf("context bytes: got %d, want %d", l.ContextBytes, len(ctx))
	}
	if l.Emulator != "bess" {
		t.Fatalf("emulator: %q", l.Emulator)
	}
	if l.Rom == nil || l.Rom.Title != "BESS Testing Rom" ||
		l.Rom.Checksum != "ABCD" {
		t.Fatalf("rom: %+v", l.Rom)
	}
	if l.Core == nil || l.Core.Version != "1.1" || l.Core.PC != "0100" ||
		l.Core.Execution != "running" {
		t.Fatalf("core: %+v", l.Core)
	}

	idents := []string{"NAME", "INFO", "CORE", "END "}
	if len(l.Blocks) != len(idents) {
		t.Fatalf("expected %d blocks, got %d", len(idents), len(l.Blocks))
	}
	for ix, id := range idents {
		if l.Blocks[ix].Ident != id {
			t.Fatalf("block %d: got %q, want %q", ix, l.Blocks[ix].Ident, id)
		}
	}
}

func TestInspectRejectsGarbage(t *testing.T) {

	a := &api{}

	req := httptest.NewRequest(
		"POST", "/inspect", bytes.NewReader([]byte("not a save state")))
	rec := httptest.NewRecorder()

	a.inspect(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestStrip(t *testing.T) {

	a := &api{}
	ctx := []byte("native part")

	req := httptest.NewRequest(
		"POST", "/strip", bytes.NewReader(testState(t, ctx)))
	rec := httptest.NewRecorder()

	a.strip(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.Equal(rec.Body.Bytes(), ctx) {
		t.Fatalf("context mismatch: %q", rec.Body.Bytes())
	}
}

func TestHealth(t *testing.T) {

	a := &api{}

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	a.health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var h Health
	if err := json.NewDecoder(rec.Body).Decode(&h); err != nil {
		t.Fatalf("reply not JSON: %v", err)
	}
	if h.Status != "up" {
		t.Fatalf("status: %q", h.Status)
	}
}
