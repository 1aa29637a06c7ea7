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

package main

import (
	"fmt"
	"os"

	"github.com/xelalexv/gobess/pkg/run"
)

//
var GoBESSVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: bessctl {dump|info|strip|serve|version} ...

run 'bessctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nGoBESS %s\n\n", GoBESSVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "dump":
		run.DieOnError(run.NewDump().Execute(args))

	case "info":
		run.DieOnError(run.NewInfo().Execute(args))

	case "strip":
		run.DieOnError(run.NewStrip().Execute(args))

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
