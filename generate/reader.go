package generate

import (
	"bytes"
	"encoding/binary"
	"hcc/progs"

	"github.com/pkg/errors"
)

// Image is a decoded progs image.
type Image struct {
	Header     Header
	Strings    []byte
	Statements []progs.Statement
	Functions  []progs.Function
	GlobalDefs []progs.Def
	FieldDefs  []progs.Def
	Globals    []uint32
}

// ReadImage decodes a progs image, checking that every section lies within the
// data.
func ReadImage(data []byte) (*Image, error) {
	img := &Image{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &img.Header); err != nil {
		return nil, errors.Wrap(err, "error reading image header")
	}

	h := &img.Header
	img.Strings = make([]byte, h.NumStrings)
	img.Statements = make([]progs.Statement, h.NumStatements)
	img.Functions = make([]progs.Function, h.NumFunctions)
	img.GlobalDefs = make([]progs.Def, h.NumGlobalDefs)
	img.FieldDefs = make([]progs.Def, h.NumFieldDefs)
	img.Globals = make([]uint32, h.NumGlobals)

	sections := []struct {
		name     string
		ofs, num int32
		size     int
		dst      interface{}
	}{
		{"strings", h.OfsStrings, h.NumStrings, 1, img.Strings},
		{"statements", h.OfsStatements, h.NumStatements, StatementSize, img.Statements},
		{"functions", h.OfsFunctions, h.NumFunctions, FunctionSize, img.Functions},
		{"globaldefs", h.OfsGlobalDefs, h.NumGlobalDefs, DefSize, img.GlobalDefs},
		{"fielddefs", h.OfsFieldDefs, h.NumFieldDefs, DefSize, img.FieldDefs},
		{"globals", h.OfsGlobals, h.NumGlobals, 4, img.Globals},
	}

	for _, s := range sections {
		if s.ofs < 0 || s.num < 0 {
			return nil, errors.Errorf("bad %s section: offset %d, count %d", s.name, s.ofs, s.num)
		}

		end := int64(s.ofs) + int64(s.num)*int64(s.size)
		if end > int64(len(data)) {
			return nil, errors.Errorf("%s section runs past the end of the image", s.name)
		}

		if err := binary.Read(bytes.NewReader(data[int64(s.ofs):end]), binary.LittleEndian, s.dst); err != nil {
			return nil, errors.Wrapf(err, "error reading %s", s.name)
		}
	}

	return img, nil
}

// String returns the NUL-terminated string at ofs in the image's string heap.
func (img *Image) String(ofs int32) string {
	if ofs < 0 || int(ofs) >= len(img.Strings) {
		return ""
	}

	end := bytes.IndexByte(img.Strings[ofs:], 0)
	if end < 0 {
		return string(img.Strings[ofs:])
	}

	return string(img.Strings[ofs : int(ofs)+end])
}
