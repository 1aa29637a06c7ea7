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

//
func NewUnknown(ident Ident, data []byte) *Unknown {
	d := make([]byte, len(data))
	copy(d, data)
	return &Unknown{ident: ident, data: d}
}

/*
	Unknown is the pass-through body for any block whose identifier has
	no schema here. Its bytes are preserved verbatim, so re-encoding a
	document reproduces blocks this implementation never understood.
*/
type Unknown struct {
	ident Ident
	data  []byte
}

//
func (u *Unknown) Ident() Ident {
	return u.ident
}

//
func (u *Unknown) Len() uint32 {
	return uint32(len(u.data))
}

//
func (u *Unknown) Encode(e *serde.Encoder) error {
	e.Raw(u.data)
	return nil
}

// Data returns the raw body bytes.
func (u *Unknown) Data() []byte {
	return u.data
}

//
func (u *Unknown) Emit(w io.Writer) {
	fmt.Fprintf(w, "\n%s: %d bytes, opaque\n", u.ident, len(u.data))
	d := hex.Dumper(w)
	defer d.Close()
	d.Write(u.data)
}
