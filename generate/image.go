// Package generate produces the output artifacts of a closed compilation unit:
// the progs image, the progdefs struct mirror and the precache manifest.
package generate

import (
	"bufio"
	"encoding/binary"
	"hcc/common"
	"hcc/progs"
	"io"

	"github.com/pkg/errors"
)

// Header is the fixed-layout header at the start of a progs image.  Offsets
// are byte offsets from the start of the image.  The field order matches the
// engine's dprograms_t.
type Header struct {
	Version int32
	CRC     int32

	OfsStatements int32
	NumStatements int32

	OfsGlobalDefs int32
	NumGlobalDefs int32

	OfsFieldDefs int32
	NumFieldDefs int32

	OfsFunctions int32
	NumFunctions int32

	// NumStrings is the size of the string heap in bytes.
	OfsStrings int32
	NumStrings int32

	OfsGlobals int32
	NumGlobals int32

	EntityFields int32
}

// Sizes of the encoded records.
const (
	HeaderSize    = 15 * 4
	StatementSize = 8
	FunctionSize  = 7*4 + progs.MaxParms
	DefSize       = 8
)

// imageWriter tracks the write position of a buffered image stream and holds
// the first error encountered so that sections can be written unconditionally.
type imageWriter struct {
	bw  *bufio.Writer
	pos int32
	err error
}

func (w *imageWriter) write(v interface{}) {
	if w.err != nil {
		return
	}

	w.err = binary.Write(w.bw, binary.LittleEndian, v)
	w.pos += int32(binary.Size(v))
}

// WriteImage serializes a closed unit into ws.  The header is reserved first,
// the sections are streamed and the header is then rewritten in place with the
// final offsets and counts.  All integers are little-endian.  The unit's
// descriptor tables are built if they have not been already.
func WriteImage(ws io.WriteSeeker, u *progs.Unit, crc uint16) (*Header, error) {
	if err := u.BuildDefs(); err != nil {
		return nil, err
	}

	start, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "error locating image start")
	}

	hdr := &Header{}
	w := &imageWriter{bw: bufio.NewWriter(ws)}

	// placeholder, patched below
	w.write(hdr)

	hdr.OfsStrings = w.pos
	hdr.NumStrings = int32(u.Strings().Size())
	w.write(u.Strings().Bytes())

	hdr.OfsStatements = w.pos
	hdr.NumStatements = int32(len(u.Statements()))
	w.write(u.Statements())

	hdr.OfsFunctions = w.pos
	hdr.NumFunctions = int32(len(u.Functions()))
	w.write(u.Functions())

	hdr.OfsGlobalDefs = w.pos
	hdr.NumGlobalDefs = int32(len(u.GlobalDefs()))
	w.write(u.GlobalDefs())

	hdr.OfsFieldDefs = w.pos
	hdr.NumFieldDefs = int32(len(u.FieldDefs()))
	w.write(u.FieldDefs())

	hdr.OfsGlobals = w.pos
	hdr.NumGlobals = int32(u.NumGlobals())
	w.write(u.Globals())

	if w.err != nil {
		return nil, errors.Wrap(w.err, "error writing image")
	}

	if err := w.bw.Flush(); err != nil {
		return nil, errors.Wrap(err, "error writing image")
	}

	hdr.EntityFields = u.EntityFields()
	hdr.Version = common.ProgVersion
	hdr.CRC = int32(crc)

	if _, err := ws.Seek(start, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "error seeking to image header")
	}

	if err := binary.Write(ws, binary.LittleEndian, hdr); err != nil {
		return nil, errors.Wrap(err, "error writing image header")
	}

	if _, err := ws.Seek(0, io.SeekEnd); err != nil {
		return nil, errors.Wrap(err, "error seeking to image end")
	}

	return hdr, nil
}

// Size returns the total size in bytes of the image described by the header.
func (h *Header) Size() int32 {
	return h.OfsGlobals + h.NumGlobals*4
}
