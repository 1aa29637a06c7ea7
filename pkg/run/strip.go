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

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/gobess/pkg/bess"
)

//
func NewStrip() *Strip {

	s := &Strip{}
	s.Command = *NewCommand(
		"strip -i|--input {file} -o|--output {file}",
		"strip BESS data off a save state file",
		"\nUse the strip command to extract the native save state, "+
			"dropping all BESS data.",
		s.Run)

	s.AddSetting(&s.File, "input", "i", "", nil, "save state input file", true)
	s.AddSetting(&s.Out, "output", "o", "", nil, "output file", true)

	return s
}

//
type Strip struct {
	//
	Command
	//
	File string
	Out  string
}

//
func (s *Strip) Run() error {

	s.ParseSettings()

	f, err := os.Open(s.File)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := bess.Read(f)
	if err != nil {
		return fmt.Errorf("error reading save state: %v", err)
	}

	out, err := os.Create(s.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(doc.Context()); err != nil {
		return err
	}

	log.Infof("wrote %d context bytes to %s", len(doc.Context()), s.Out)
	return nil
}
