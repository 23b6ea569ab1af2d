package disasm

import (
	"fmt"
	"hcc/progs"
	"strings"

	"github.com/pkg/errors"
)

// Statement renders the instruction at index i: its index, source line,
// mnemonic and operands.  Branch operands print as deltas and store
// destinations print without their contents.
func Statement(u *progs.Unit, i int) string {
	s := u.Statements()[i]

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%4d : %4d : %s ", i, u.StatementLine(i), pad(s.Op.Name(), 10)))

	switch {
	case s.Op.IsConditional():
		sb.WriteString(GlobalString(u, int(s.A)))
		sb.WriteString(fmt.Sprintf("branch %d", s.B))
	case s.Op == progs.OpGoto:
		sb.WriteString(fmt.Sprintf("branch %d", s.A))
	case s.Op.IsStore():
		sb.WriteString(GlobalString(u, int(s.A)))
		sb.WriteString(GlobalStringNoContents(u, int(s.B)))
	case s.Op.IsSwitch():
		sb.WriteString(GlobalString(u, int(s.A)))
		sb.WriteString(fmt.Sprintf("branch %d", s.B))
	case s.Op == progs.OpCase:
		sb.WriteString(fmt.Sprintf("of %d branch %d", s.A, s.B))
	default:
		if s.A != 0 {
			sb.WriteString(GlobalString(u, int(s.A)))
		}
		if s.B != 0 {
			sb.WriteString(GlobalString(u, int(s.B)))
		}
		if s.C != 0 {
			sb.WriteString(GlobalStringNoContents(u, int(s.C)))
		}
	}

	return sb.String()
}

// Function renders the instructions of the named function, from its first
// instruction up to and including the terminating DONE.
func Function(u *progs.Unit, name string) (string, error) {
	ndx, ok := u.FunctionByName(name)
	if !ok {
		return "", errors.Errorf("No function names \"%s\"", name)
	}

	f := u.Functions()[ndx]
	if f.FirstStatement < 0 {
		return "", errors.Errorf("function `%s` is builtin #%d", name, -f.FirstStatement)
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Statements for %s:\n", name))

	stmts := u.Statements()
	for i := int(f.FirstStatement); i < len(stmts); i++ {
		sb.WriteString(Statement(u, i))
		sb.WriteByte('\n')

		if stmts[i].Op == progs.OpDone {
			break
		}
	}

	return sb.String(), nil
}
