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

// End is the END block: no payload, marks the end of BESS data.
// Required, and must be the last block.
type End struct{}

//
func (n End) Ident() Ident {
	return IdentEnd
}

//
func (n End) Len() uint32 {
	return 0
}

//
func (n End) Encode(e *serde.Encoder) error {
	return nil
}

//
func (n End) Emit(w io.Writer) {
	fmt.Fprint(w, "\nEND\n")
}
