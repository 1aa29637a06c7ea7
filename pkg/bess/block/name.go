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

	"github.com/xelalexv/gobess/pkg/bess/serde"
)

/*
	Name is the NAME block: the name and version of the emulator that
	created the save state, in ASCII. Optional, but worth writing in
	every implementation, since it tells the user which emulator can
	read the native part of the file. When present, it comes first.
*/
type Name string

//
func (n Name) Ident() Ident {
	return IdentName
}

//
func (n Name) Len() uint32 {
	return uint32(len(n))
}

//
func (n Name) Encode(e *serde.Encoder) error {
	e.Text(string(n))
	return nil
}

//
func (n Name) Emit(w io.Writer) {
	fmt.Fprintf(w, "\nNAME: %q\n", string(n))
}

//
func decodeName(d *serde.Decoder) (Body, error) {
	s, err := d.Text(d.Remaining())
	if err != nil {
		return nil, err
	}
	return Name(s), nil
}
