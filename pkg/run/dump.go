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

package run

import (
	"fmt"
	"os"

	"github.com/xelalexv/gobess/pkg/bess"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Command = *NewCommand(
		"dump -i|--input {file}",
		"dump the BESS blocks of a save state file",
		"\nUse the dump command to list all BESS blocks of a save state file.",
		d.Run)

	d.AddSetting(&d.File, "input", "i", "", nil, "save state input file", true)

	return d
}

//
type Dump struct {
	//
	Command
	//
	File string
}

//
func (d *Dump) Run() error {

	d.ParseSettings()

	f, err := os.Open(d.File)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := bess.Read(f)
	if err != nil {
		return fmt.Errorf("error reading save state: %v", err)
	}

	fmt.Printf("context: %d bytes\n", len(doc.Context()))

	for _, b := range doc.Blocks() {
		b.Emit(os.Stdout)
	}

	return nil
}
