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
	"github.com/xelalexv/gobess/pkg/control"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Command = *NewCommand(
		"serve [-a|--address {address}]",
		"run the save state inspection API",
		"\nUse the serve command to run the HTTP API for inspecting "+
			"save state files.",
		s.Run)

	s.AddSetting(&s.Address, "address", "a", "BESS_ADDRESS", "localhost:8777",
		"address and port at which the API listens", false)

	return s
}

//
type Serve struct {
	//
	Command
	//
	Address string
}

//
func (s *Serve) Run() error {
	s.ParseSettings()
	return control.NewAPIServer(s.Address).Serve()
}
