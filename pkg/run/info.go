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
func NewInfo() *Info {

	i := &Info{}
	i.Command = *NewCommand(
		"info -i|--input {file}",
		"show summary info about a save state file",
		"\nUse the info command to print emulator, ROM, and core state "+
			"summary of a save state file.",
		i.Run)

	i.AddSetting(&i.File, "input", "i", "", nil, "save state input file", true)

	return i
}

//
type Info struct {
	//
	Command
	//
	File string
}

//
func (i *Info) Run() error {

	i.ParseSettings()

	f, err := os.Open(i.File)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := bess.Read(f)
	if err != nil {
		return fmt.Errorf("error reading save state: %v", err)
	}

	if name, ok := doc.EmulatorName(); ok {
		fmt.Printf("emulator: %s\n", name)
	}

	if info, ok := doc.Info(); ok {
		fmt.Printf("rom:      %s (checksum %04X)\n",
			info.Title(), info.Checksum())
	}

	core, ok := doc.Core()
	if !ok {
		return fmt.Errorf("save state has no CORE block")
	}

	fmt.Printf("bess:     v%d.%d\n", core.Version.Major, core.Version.Minor)
	fmt.Printf("model:    %+q\n", core.Model.String())
	fmt.Printf("pc: %04X, af: %04X, bc: %04X, de: %04X, hl: %04X, sp: %04X\n",
		core.Reg.PC, core.Reg.AF, core.Reg.BC, core.Reg.DE, core.Reg.HL,
		core.Reg.SP)
	fmt.Printf("ime: %t, ie: %02X, execution: %s\n",
		core.Reg.IME, core.Reg.IE, core.Reg.Exe)

	if err := core.Validate(); err != nil {
		fmt.Printf("warning: %v\n", err)
	}

	return nil
}
