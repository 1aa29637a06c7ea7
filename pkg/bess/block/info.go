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
	"fmt"
	"io"
	"strings"

	"github.com/xelalexv/gobess/pkg/bess/serde"
)

// InfoLen is the fixed body length of an INFO block.
const InfoLen = 0x12

//
func NewInfo(title [16]byte, checksum uint16) *Info {
	return &Info{title: title, gchk: checksum}
}

/*
	Info is the INFO block: identity of the ROM this save state
	originates from, as found in the cartridge header. Optional. When
	present, it comes before CORE but after NAME.
*/
type Info struct {
	// title as provided by the ROM header, bytes 0x134-0x143
	title [16]byte
	// global checksum as provided by the ROM header, bytes 0x14e-0x14f
	gchk uint16
}

//
func (i *Info) Ident() Ident {
	return IdentInfo
}

//
func (i *Info) Len() uint32 {
	return InfoLen
}

//
func (i *Info) Encode(e *serde.Encoder) error {
	e.Raw(i.title[:])
	e.U16(i.gchk)
	return nil
}

// Title returns the ROM title with trailing padding removed.
func (i *Info) Title() string {
	return strings.TrimRight(string(i.title[:]), "\x00 ")
}

//
func (i *Info) Checksum() uint16 {
	return i.gchk
}

//
func (i *Info) Emit(w io.Writer) {
	fmt.Fprintf(w, "\nINFO: %+q - checksum: %04X\n", i.Title(), i.gchk)
}

//
func decodeInfo(d *serde.Decoder) (Body, error) {

	i := &Info{}

	b, err := d.Raw(len(i.title))
	if err != nil {
		return nil, err
	}
	copy(i.title[:], b)

	if i.gchk, err = d.U16(); err != nil {
		return nil, err
	}

	return i, nil
}
