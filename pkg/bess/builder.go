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

package bess

import (
	"fmt"
	"math"

	"github.com/xelalexv/gobess/pkg/bess/block"
	"github.com/xelalexv/gobess/pkg/bess/serde"
)

//
func NewBuilder() *Builder {
	return &Builder{}
}

/*
	Builder accumulates the blocks of a document and finalizes them in
	the order the format prescribes: NAME if present, then INFO if
	present, then CORE, then any extra blocks in the order they were
	added, then END. The prefix order is a structural invariant of the
	format, not a choice the caller makes. CORE is mandatory; NAME and
	INFO are simply omitted when absent. A builder is single-use.
*/
type Builder struct {
	name *block.Name
	info *block.Info
	core *block.Core
	xtra []*block.Block
	done bool
}

// Name sets the emulator name for the NAME block.
func (b *Builder) Name(name string) *Builder {
	n := block.Name(name)
	b.name = &n
	return b
}

// Info sets the INFO block.
func (b *Builder) Info(info *block.Info) *Builder {
	b.info = info
	return b
}

// Core sets the CORE block.
func (b *Builder) Core(core *block.Core) *Builder {
	b.core = core
	return b
}

// Block appends an extra block after the fixed prefix. Extras keep
// their insertion order.
func (b *Builder) Block(body block.Body) *Builder {
	b.xtra = append(b.xtra, block.New(body))
	return b
}

/*
	Build finalizes the builder into an immutable document. The context
	blob is taken verbatim; its length becomes the footer's start
	offset. Build fails with a RequiredError when CORE was never
	supplied, and with serde.ErrTooLarge when the context does not fit
	the footer's 32-bit offset.
*/
func (b *Builder) Build(ctx []byte) (*Document, error) {

	if b.done {
		return nil, fmt.Errorf("builder has already been used")
	}
	b.done = true

	if b.core == nil {
		return nil, &RequiredError{Ident: block.IdentCore}
	}

	if uint64(len(ctx)) > math.MaxUint32 {
		return nil, serde.ErrTooLarge
	}

	var blx []*block.Block
	if b.name != nil {
		blx = append(blx, block.New(*b.name))
	}
	if b.info != nil {
		blx = append(blx, block.New(b.info))
	}
	blx = append(blx, block.New(b.core))
	blx = append(blx, b.xtra...)
	blx = append(blx, block.New(block.End{}))

	c := make([]byte, len(ctx))
	copy(c, ctx)

	return &Document{
		ctx: c,
		blx: blx,
		end: Footer{Start: uint32(len(ctx)), Magic: Magic},
	}, nil
}
