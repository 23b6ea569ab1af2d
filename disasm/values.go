// Package disasm renders the contents of a compilation unit as text: values,
// storage slots and instructions.  It is used for diagnostics and for the
// function listings requested on the command line.
package disasm

import (
	"fmt"
	"hcc/progs"
	"hcc/typing"
	"math"
	"strings"
)

// Limits of a quoted string: the rendering is cut off with an ellipsis once
// it grows past quoteMax characters and never exceeds quoteCap characters
// before the closing quote.
const (
	quoteMax = 60
	quoteCap = 78
)

// QuoteString renders s quoted with newlines and quotes escaped, truncated to
// about sixty characters.
func QuoteString(s string) string {
	sb := strings.Builder{}
	sb.WriteByte('"')

	for i := 0; i < len(s); i++ {
		if sb.Len() == quoteCap {
			break
		}

		switch s[i] {
		case '\n':
			sb.WriteString("\\n")
		case '"':
			sb.WriteString("\\\"")
		default:
			sb.WriteByte(s[i])
		}

		if sb.Len() > quoteMax {
			sb.WriteString("...")
			break
		}
	}

	sb.WriteByte('"')
	return sb.String()
}

// ValueString renders the value of kind k stored at slot ofs of the unit.
func ValueString(u *progs.Unit, k typing.Kind, ofs int) string {
	word := u.GlobalWord(ofs)

	switch k {
	case typing.KindString:
		return QuoteString(u.Strings().String(int32(word)))
	case typing.KindEntity:
		return fmt.Sprintf("entity %d", int32(word))
	case typing.KindFunction:
		funcs := u.Functions()
		if word == 0 || int(word) >= len(funcs) {
			return "undefined function"
		}

		return u.Strings().String(funcs[word].SName) + "()"
	case typing.KindField:
		if id, ok := u.FieldByOffset(int32(word)); ok {
			return "." + u.Symbol(id).Name
		}

		return fmt.Sprintf(".%d(?)", int32(word))
	case typing.KindVoid:
		return "void"
	case typing.KindFloat:
		return fmt.Sprintf("%5.1f", math.Float32frombits(word))
	case typing.KindVector:
		return fmt.Sprintf("'%5.1f %5.1f %5.1f'", u.GlobalFloat(ofs), u.GlobalFloat(ofs+1), u.GlobalFloat(ofs+2))
	case typing.KindPointer:
		return "pointer"
	default:
		return fmt.Sprintf("bad type %d", k)
	}
}

// GlobalStringNoContents describes slot ofs by its offset and the name of the
// symbol that owns it, padded to a fixed width.
func GlobalStringNoContents(u *progs.Unit, ofs int) string {
	var desc string
	if id := u.SlotOwner(ofs); id == progs.NoSymbol {
		desc = fmt.Sprintf("%d(?)", ofs)
	} else {
		desc = fmt.Sprintf("%d(%s)", ofs, u.Symbol(id).Name)
	}

	return pad(desc, 16) + " "
}

// GlobalString describes slot ofs like GlobalStringNoContents, except that
// slots holding constants show their value instead of their name.
func GlobalString(u *progs.Unit, ofs int) string {
	id := u.SlotOwner(ofs)
	if id == progs.NoSymbol {
		return GlobalStringNoContents(u, ofs)
	}

	sym := u.Symbol(id)

	var desc string
	if sym.Initialized && sym.Type.Kind != typing.KindFunction {
		desc = fmt.Sprintf("%d(%s)", ofs, ValueString(u, sym.Type.Kind, ofs))
	} else {
		desc = fmt.Sprintf("%d(%s)", ofs, sym.Name)
	}

	return pad(desc, 16) + " "
}

func pad(s string, width int) string {
	if len(s) < width {
		return s + strings.Repeat(" ", width-len(s))
	}

	return s
}
