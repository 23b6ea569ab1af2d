package generate

import (
	"bufio"
	"fmt"
	"hcc/crc"
	"hcc/progs"
	"hcc/typing"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Progdefs renders the C struct mirror of the system globals and entity fields
// of a unit, without the trailing checksum definition.  System globals are the
// top-level symbols declared before the globals sentinel; system fields are the
// field symbols declared before the fields sentinel.
func Progdefs(u *progs.Unit) string {
	sb := strings.Builder{}
	syms := u.Symbols()

	sb.WriteString("\n/* generated by hcc, do not modify */\n\n")
	sb.WriteString("typedef struct\n{")
	sb.WriteString(fmt.Sprintf("\tint\tpad[%d];\n", progs.ReservedOfs))

	for i := 1; i < len(syms); i++ {
		sym := &syms[i]
		if sym.Name == u.Sentinels.Globals {
			break
		}

		if sym.Scope != progs.NoScope {
			continue
		}

		sb.WriteString(member(sym.Type.Kind, sym.Name))

		// the components are covered by the vec3_t
		if sym.Type.Kind == typing.KindVector {
			i += sym.Type.ComponentCount()
		}
	}
	sb.WriteString("} globalvars_t;\n\n")

	sb.WriteString("typedef struct\n{\n")
	for i := 1; i < len(syms); i++ {
		sym := &syms[i]
		if sym.Name == u.Sentinels.Fields {
			break
		}

		if sym.Type.Kind != typing.KindField {
			continue
		}

		sb.WriteString(member(sym.Type.Aux.Kind, sym.Name))
		i += sym.Type.ComponentCount()
	}
	sb.WriteString("} entvars_t;\n\n")

	return sb.String()
}

// member renders one struct member declaration.
func member(k typing.Kind, name string) string {
	var ctype string
	switch k {
	case typing.KindFloat:
		ctype = "float"
	case typing.KindVector:
		ctype = "vec3_t"
	case typing.KindString:
		ctype = "string_t"
	case typing.KindFunction:
		ctype = "func_t"
	default:
		ctype = "int"
	}

	return fmt.Sprintf("\t%s\t%s;\n", ctype, name)
}

// WriteProgdefs writes the struct mirror of u to rw, checksums what was written
// by reading it back from the start, and appends the checksum definition.  The
// returned checksum belongs in the image header.
func WriteProgdefs(rw io.ReadWriteSeeker, u *progs.Unit) (uint16, error) {
	start, err := rw.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "error locating progdefs start")
	}

	if _, err := io.WriteString(rw, Progdefs(u)); err != nil {
		return 0, errors.Wrap(err, "error writing progdefs")
	}

	if _, err := rw.Seek(start, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "error rewinding progdefs")
	}

	sum := crc.New()
	br := bufio.NewReader(rw)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, errors.Wrap(err, "error reading back progdefs")
		}

		sum.ProcessByte(b)
	}

	if _, err := rw.Seek(0, io.SeekEnd); err != nil {
		return 0, errors.Wrap(err, "error seeking to progdefs end")
	}

	if _, err := fmt.Fprintf(rw, "#define PROGHEADER_CRC %d\n", sum.Value()); err != nil {
		return 0, errors.Wrap(err, "error writing progdefs")
	}

	return sum.Value(), nil
}

// ProgdefsCRC returns the checksum WriteProgdefs would compute for u.
func ProgdefsCRC(u *progs.Unit) uint16 {
	return crc.Bytes([]byte(Progdefs(u)))
}
