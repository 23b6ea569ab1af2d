package disasm

import (
	"hcc/config"
	"hcc/progs"
	"hcc/typing"
	"strings"
	"testing"
)

func newUnit(t *testing.T) *progs.Unit {
	t.Helper()

	u := progs.NewUnit(config.Options{}, config.DefaultLimits())
	if err := u.Open(); err != nil {
		t.Fatal(err)
	}

	return u
}

func TestQuoteString(t *testing.T) {
	long := strings.Repeat("x", 100)

	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{"say \"hi\"\n", `"say \"hi\"\n"`},
		{long, `"` + strings.Repeat("x", 60) + `..."`},
	}

	for _, test := range tests {
		if got := QuoteString(test.in); got != test.want {
			t.Errorf("QuoteString(%q) = %s; want %s", test.in, got, test.want)
		}
	}
}

func TestValueString(t *testing.T) {
	u := newUnit(t)

	f, _ := u.Declare("f", typing.Float, progs.NoScope)
	u.SetGlobalFloat(u.Symbol(f).Ofs, 2.5)

	v, _ := u.Declare("v", typing.Vector, progs.NoScope)
	vofs := u.Symbol(v).Ofs
	u.SetGlobalFloat(vofs, 1)
	u.SetGlobalFloat(vofs+1, -2)
	u.SetGlobalFloat(vofs+2, 30)

	s, _ := u.Declare("s", typing.String, progs.NoScope)
	u.SetGlobalString(u.Symbol(s).Ofs, "hi")

	u.Declare("health", u.Types().FieldOf(typing.Float), progs.NoScope)
	armor, _ := u.Declare("armor", u.Types().FieldOf(typing.Float), progs.NoScope)

	think, _ := u.Declare("think", u.Types().Function(), progs.NoScope)
	u.DefineFunction(think, progs.Function{FirstStatement: -3})
	touch, _ := u.Declare("touch", u.Types().Function(), progs.NoScope)

	tests := []struct {
		kind typing.Kind
		ofs  int
		want string
	}{
		{typing.KindFloat, u.Symbol(f).Ofs, "  2.5"},
		{typing.KindVector, vofs, "'  1.0  -2.0  30.0'"},
		{typing.KindString, u.Symbol(s).Ofs, `"hi"`},
		{typing.KindField, u.Symbol(armor).Ofs, ".armor"},
		{typing.KindFunction, u.Symbol(think).Ofs, "think()"},
		{typing.KindFunction, u.Symbol(touch).Ofs, "undefined function"},
		{typing.KindEntity, u.Symbol(f).Ofs - 1, "entity 0"},
		{typing.KindVoid, 0, "void"},
		{typing.KindPointer, 0, "pointer"},
		{typing.Kind(12), 0, "bad type 12"},
	}

	for _, test := range tests {
		if got := ValueString(u, test.kind, test.ofs); got != test.want {
			t.Errorf("ValueString(%s, %d) = %q; want %q", test.kind.Repr(), test.ofs, got, test.want)
		}
	}
}

func TestGlobalString(t *testing.T) {
	u := newUnit(t)

	x, _ := u.Declare("x", typing.Float, progs.NoScope)
	pi, _ := u.Declare("pi", typing.Float, progs.NoScope)
	u.SetGlobalFloat(u.Symbol(pi).Ofs, 3)
	u.MarkInitialized(pi)
	tmp, _ := u.AllocTemp(1)

	tests := []struct {
		got, want string
	}{
		{GlobalString(u, u.Symbol(x).Ofs), "28(x)            "},
		{GlobalString(u, u.Symbol(pi).Ofs), "29(  3.0)        "},
		{GlobalStringNoContents(u, u.Symbol(pi).Ofs), "29(pi)           "},
		{GlobalString(u, tmp), "30(?)            "},
		{GlobalString(u, progs.OfsReturn), "1(temp)          "},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %q; want %q", test.got, test.want)
		}
	}
}

func TestStatement(t *testing.T) {
	u := newUnit(t)

	u.Declare("a", typing.Float, progs.NoScope)
	u.Declare("b", typing.Float, progs.NoScope)
	u.Declare("c", typing.Float, progs.NoScope)

	add, _ := u.AddStatement(progs.OpAddF, 28, 29, 30, 7)
	ifnot, _ := u.AddStatement(progs.OpIfNot, 28, 3, 0, 8)
	goto_, _ := u.AddStatement(progs.OpGoto, -2, 0, 0, 9)
	store, _ := u.AddStatement(progs.OpStoreF, 28, 29, 0, 10)
	sw, _ := u.AddStatement(progs.OpSwitchF, 28, 4, 0, 11)
	cs, _ := u.AddStatement(progs.OpCase, 29, 2, 0, 12)

	tests := []struct {
		ndx  int
		want string
	}{
		{add, "   1 :    7 : ADD_F      28(a)            29(b)            30(c)            "},
		{ifnot, "   2 :    8 : IFNOT      28(a)            branch 3"},
		{goto_, "   3 :    9 : GOTO       branch -2"},
		{store, "   4 :   10 : STORE_F    28(a)            29(b)            "},
		{sw, "   5 :   11 : SWITCH_F   28(a)            branch 4"},
		{cs, "   6 :   12 : CASE       of 29 branch 2"},
	}

	for _, test := range tests {
		if got := Statement(u, test.ndx); got != test.want {
			t.Errorf("Statement(%d) =\n%q\nwant\n%q", test.ndx, got, test.want)
		}
	}
}

func TestFunction(t *testing.T) {
	u := newUnit(t)

	u.Declare("a", typing.Float, progs.NoScope)
	first, _ := u.AddStatement(progs.OpNotF, 28, 0, 29, 3)
	u.AddStatement(progs.OpDone, 0, 0, 0, 4)
	u.AddStatement(progs.OpDone, 0, 0, 0, 5)

	fn, _ := u.Declare("main", u.Types().Function(), progs.NoScope)
	u.DefineFunction(fn, progs.Function{FirstStatement: int32(first)})

	bi, _ := u.Declare("print", u.Types().Function(), progs.NoScope)
	u.DefineFunction(bi, progs.Function{FirstStatement: -2})

	got, err := Function(u, "main")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 || lines[0] != "Statements for main:" {
		t.Fatalf("Function(main) =\n%s", got)
	}

	if !strings.HasPrefix(lines[2], "   2 :    4 : DONE") {
		t.Errorf("listing does not stop at DONE: %q", lines[2])
	}

	if _, err := Function(u, "missing"); err == nil || err.Error() != `No function names "missing"` {
		t.Errorf("Function(missing) = %v", err)
	}

	if _, err := Function(u, "print"); err == nil {
		t.Error("Function(print) listed a builtin")
	}
}
