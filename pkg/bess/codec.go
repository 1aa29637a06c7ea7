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
	"io"
	"io/ioutil"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/gobess/pkg/bess/block"
	"github.com/xelalexv/gobess/pkg/bess/serde"
)

// Bytes encodes the document: context verbatim, each block via the
// envelope in builder order, then the footer.
func (doc *Document) Bytes() ([]byte, error) {

	e := serde.NewEncoder()
	e.Raw(doc.ctx)

	for _, b := range doc.blx {
		if err := b.Encode(e); err != nil {
			return nil, err
		}
	}

	e.U32(doc.end.Start)
	e.U32(doc.end.Magic)

	return e.Bytes(), nil
}

// Write encodes the document to the given writer.
func (doc *Document) Write(out io.Writer) error {
	b, err := doc.Bytes()
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

/*
	Decode reconstructs a document from a complete save state buffer. It
	reads the trailing 8 bytes as the footer, slices the context blob as
	buf[0:start] without interpreting it, and decodes blocks from
	buf[start:len-8] until that region is exhausted. Blocks appearing
	after END still decode, possibly as Unknown; whether their presence
	is acceptable is a conformance question for the host, not a
	transcoding fault. Decode fails with serde.ErrTooShort when the
	buffer cannot hold a footer or the start offset lies beyond the
	block region, and with ErrBadMagic when the footer is not a BESS
	footer.
*/
func Decode(buf []byte) (*Document, error) {

	if len(buf) < FooterLen {
		return nil, serde.ErrTooShort
	}
	ftx := len(buf) - FooterLen

	var end Footer
	var err error

	fd := serde.NewDecoder(buf[ftx:])
	if end.Start, err = fd.U32(); err != nil {
		return nil, err
	}
	if end.Magic, err = fd.U32(); err != nil {
		return nil, err
	}
	if end.Magic != Magic {
		return nil, ErrBadMagic
	}
	if int(end.Start) > ftx {
		return nil, serde.ErrTooShort
	}

	ctx := make([]byte, end.Start)
	copy(ctx, buf[:end.Start])

	var blx []*block.Block
	d := serde.NewDecoder(buf[end.Start:ftx])

	for d.Remaining() > 0 {
		b, err := block.Decode(d)
		if err != nil {
			return nil, err
		}
		log.Tracef("decoded block %s, %d bytes", b.Ident(), b.Len())
		blx = append(blx, b)
	}

	log.Debugf("%d blocks decoded, %d context bytes", len(blx), len(ctx))

	return &Document{ctx: ctx, blx: blx, end: end}, nil
}

// Read decodes a document from the given reader. The reader is drained
// first; transcoding itself never blocks on I/O.
func Read(in io.Reader) (*Document, error) {
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return Decode(buf)
}
