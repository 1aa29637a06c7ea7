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

package block

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/xelalexv/gobess/pkg/bess/serde"
)

// CoreLen is the fixed body length of a CORE block.
const CoreLen = 0xd0

// MMIOLen is the size of the memory-mapped register snapshot.
const MMIOLen = 0x80

/*
	Core is the CORE block: CPU and PPU state, the memory-mapped
	register snapshot, and the pointers to the large buffers stored
	outside the block stream. This is the one required block. It must be
	the first block, unless NAME or INFO exist, in which case it comes
	directly after them.
*/
type Core struct {
	// Version carries the BESS major and minor version numbers.
	Version Version
	// Model is the four-character ASCII model identifier.
	Model Model
	// Reg holds the saved register values.
	Reg Registers
	// Mem locates the large buffer contents within the file.
	Mem Locations
}

//
func (c *Core) Ident() Ident {
	return IdentCore
}

//
func (c *Core) Len() uint32 {
	return CoreLen
}

//
func (c *Core) Encode(e *serde.Encoder) error {
	e.U16(c.Version.Major)
	e.U16(c.Version.Minor)
	e.Raw(c.Model[:])
	c.Reg.encode(e)
	c.Mem.encode(e)
	return nil
}

/*
	Validate checks the cross-field constraints the transcoder itself
	never enforces: a known model family, the mandatory pad character,
	and zero palette buffer lengths on pre-color models. Interpreting
	registers is the consuming emulator's business; locating them is
	ours.
*/
func (c *Core) Validate() error {

	switch c.Model[0] {
	case 'G', 'S', 'C':
	default:
		return fmt.Errorf("unknown model family: %q", c.Model[0])
	}

	if c.Model[3] != ' ' {
		return fmt.Errorf("model pad character missing: %+q", c.Model)
	}

	if c.Model[0] != 'C' && (c.Mem.BGP.Len != 0 || c.Mem.OBJ.Len != 0) {
		return fmt.Errorf(
			"palette buffers must be empty for pre-color model %+q", c.Model)
	}

	return nil
}

//
func (c *Core) Emit(w io.Writer) {
	fmt.Fprintf(w, "\nCORE: v%d.%d - model: %+q\n",
		c.Version.Major, c.Version.Minor, c.Model.String())
	fmt.Fprintf(w, "pc: %04X, af: %04X, bc: %04X, de: %04X, hl: %04X, "+
		"sp: %04X\n", c.Reg.PC, c.Reg.AF, c.Reg.BC, c.Reg.DE, c.Reg.HL,
		c.Reg.SP)
	fmt.Fprintf(w, "ime: %t, ie: %02X, execution: %s\n",
		c.Reg.IME, c.Reg.IE, c.Reg.Exe)
	d := hex.Dumper(w)
	defer d.Close()
	d.Write(c.Reg.MMIO[:])
}

//
func decodeCore(d *serde.Decoder) (Body, error) {

	c := &Core{}
	var err error

	if c.Version.Major, err = d.U16(); err != nil {
		return nil, err
	}
	if c.Version.Minor, err = d.U16(); err != nil {
		return nil, err
	}

	b, err := d.Raw(len(c.Model))
	if err != nil {
		return nil, err
	}
	copy(c.Model[:], b)

	if err = c.Reg.decode(d); err != nil {
		return nil, err
	}
	if err = c.Mem.decode(d); err != nil {
		return nil, err
	}

	return c, nil
}

// Version carries the BESS version. Both numbers should be 1. Readers
// are expected to reject incompatible majors, but still attempt newer
// minors.
type Version struct {
	Major uint16
	Minor uint16
}

/*
	Model is the four-character model identifier. The first letter names
	the family ('G' original Game Boy, 'S' Super Game Boy, 'C' Color and
	Advance), the second the model within the family, the third the CPU
	revision; each of the latter two may be a space when the writer does
	not distinguish. The last character is padding and must be a space.
*/
type Model [4]byte

//
func (m Model) String() string {
	return string(m[:])
}

// Registers holds the saved CPU register values plus the memory-mapped
// register snapshot.
type Registers struct {
	// the six 16-bit CPU registers
	PC uint16
	AF uint16
	BC uint16
	DE uint16
	HL uint16
	SP uint16
	// interrupt master enable
	IME bool
	// the IE register
	IE byte
	// execution state
	Exe Execution
	// the values of every memory-mapped register; unused registers and
	// bits carry don't-care values
	MMIO [MMIOLen]byte
}

//
func (r *Registers) encode(e *serde.Encoder) {
	e.U16(r.PC)
	e.U16(r.AF)
	e.U16(r.BC)
	e.U16(r.DE)
	e.U16(r.HL)
	e.U16(r.SP)
	e.Bool(r.IME)
	e.U8(r.IE)
	e.Tag(uint32(r.Exe))
	e.U8(0) // reserved, must be 0
	e.Raw(r.MMIO[:])
}

//
func (r *Registers) decode(d *serde.Decoder) error {

	var err error

	if r.PC, err = d.U16(); err != nil {
		return err
	}
	if r.AF, err = d.U16(); err != nil {
		return err
	}
	if r.BC, err = d.U16(); err != nil {
		return err
	}
	if r.DE, err = d.U16(); err != nil {
		return err
	}
	if r.HL, err = d.U16(); err != nil {
		return err
	}
	if r.SP, err = d.U16(); err != nil {
		return err
	}
	if r.IME, err = d.Bool(); err != nil {
		return err
	}
	if r.IE, err = d.U8(); err != nil {
		return err
	}

	exe, err := d.Tag(uint32(Stopped))
	if err != nil {
		return err
	}
	if exe > uint32(Stopped) {
		return fmt.Errorf("invalid execution state: %d", exe)
	}
	r.Exe = Execution(exe)

	if _, err = d.U8(); err != nil { // reserved
		return err
	}

	b, err := d.Raw(len(r.MMIO))
	if err != nil {
		return err
	}
	copy(r.MMIO[:], b)

	return nil
}

// Execution is the CPU execution state.
type Execution uint8

//
const (
	Running Execution = iota
	Halted
	Stopped
)

//
func (x Execution) String() string {
	switch x {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("invalid (%d)", uint8(x))
	}
}

/*
	Locations points at the large buffers stored outside the block
	stream, so the data of an implementation's native save state can be
	reused. Offsets are absolute from the start of the save state file,
	not relative to the block stream. Palette sizes must be 0 for models
	prior to Game Boy Color.
*/
type Locations struct {
	// working RAM
	WRAM Pointer
	// video RAM
	VRAM Pointer
	// external (cartridge) RAM
	ERAM Pointer
	// object attribute memory
	OAM Pointer
	// high RAM
	HRAM Pointer
	// background palettes
	BGP Pointer
	// object palettes
	OBJ Pointer
}

//
func (l *Locations) encode(e *serde.Encoder) {
	l.WRAM.encode(e)
	l.VRAM.encode(e)
	l.ERAM.encode(e)
	l.OAM.encode(e)
	l.HRAM.encode(e)
	l.BGP.encode(e)
	l.OBJ.encode(e)
}

//
func (l *Locations) decode(d *serde.Decoder) error {
	for _, p := range []*Pointer{
		&l.WRAM, &l.VRAM, &l.ERAM, &l.OAM, &l.HRAM, &l.BGP, &l.OBJ} {
		if err := p.decode(d); err != nil {
			return err
		}
	}
	return nil
}

// Pointer is a (length, absolute file offset) pair locating one buffer.
type Pointer struct {
	// Len is the size of the buffer in bytes.
	Len uint32
	// Ptr is the absolute offset of the buffer within the file.
	Ptr uint32
}

//
func (p *Pointer) encode(e *serde.Encoder) {
	e.U32(p.Len)
	e.U32(p.Ptr)
}

//
func (p *Pointer) decode(d *serde.Decoder) error {
	var err error
	if p.Len, err = d.U32(); err != nil {
		return err
	}
	p.Ptr, err = d.U32()
	return err
}
