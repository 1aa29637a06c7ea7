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
	"fmt"

	"github.com/xelalexv/gobess/pkg/bess"
)

//
type Health struct {
	Status string `json:"status"`
}

//
func NewListing(doc *bess.Document) *Listing {

	l := &Listing{ContextBytes: len(doc.Context())}

	if name, ok := doc.EmulatorName(); ok {
		l.Emulator = name
	}

	if info, ok := doc.Info(); ok {
		l.Rom = &Rom{
			Title:    info.Title(),
			Checksum: fmt.Sprintf("%04X", info.Checksum()),
		}
	}

	if core, ok := doc.Core(); ok {
		l.Core = &CoreState{
			Version: fmt.Sprintf("%d.%d",
				core.Version.Major, core.Version.Minor),
			Model:     core.Model.String(),
			PC:        fmt.Sprintf("%04X", core.Reg.PC),
			Execution: core.Reg.Exe.String(),
		}
	}

	for _, b := range doc.Blocks() {
		l.Blocks = append(l.Blocks, &Block{
			Ident: b.Ident().String(),
			Len:   b.Len(),
		})
	}

	return l
}

// Listing is the JSON reply of the inspect route.
type Listing struct {
	ContextBytes int        `json:"contextBytes"`
	Emulator     string     `json:"emulator,omitempty"`
	Rom          *Rom       `json:"rom,omitempty"`
	Core         *CoreState `json:"core,omitempty"`
	Blocks       []*Block   `json:"blocks"`
}

//
type Rom struct {
	Title    string `json:"title"`
	Checksum string `json:"checksum"`
}

//
type CoreState struct {
	Version   string `json:"version"`
	Model     string `json:"model"`
	PC        string `json:"pc"`
	Execution string `json:"execution"`
}

//
type Block struct {
	Ident string `json:"ident"`
	Len   uint32 `json:"len"`
}
