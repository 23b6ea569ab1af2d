package progs

import (
	"hcc/config"
	"hcc/typing"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestDeclareIdempotent(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	first, err := u.Declare("x", typing.Float, NoScope)
	if err != nil {
		t.Fatal(err)
	}

	n, globals := u.NumSymbols(), u.NumGlobals()

	second, err := u.Declare("x", typing.Vector, NoScope)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("redeclaration returned %d; want %d", second, first)
	}
	if u.NumSymbols() != n || u.NumGlobals() != globals {
		t.Errorf("redeclaration grew the unit: %d symbols, %d globals", u.NumSymbols(), u.NumGlobals())
	}
	if u.Symbol(first).Type != typing.Float {
		t.Errorf("first declaration lost: type is %s", u.Symbol(first).Type.Repr())
	}
}

func TestDeclareScopes(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	fn, _ := u.Declare("f", u.Types().Function(), NoScope)
	global, _ := u.Declare("a", typing.Float, NoScope)
	local, err := u.Declare("a", typing.Float, fn)
	if err != nil {
		t.Fatal(err)
	}

	if global == local {
		t.Fatal("local shadowing a global resolved to the global")
	}

	if id, ok := u.Lookup("a", fn); !ok || id != local {
		t.Errorf("Lookup(a, f) = %d, %v; want %d, true", id, ok, local)
	}

	if _, err := u.Declare("b", typing.Float, SymbolID(1000)); err == nil {
		t.Error("Declare() accepted an invalid scope")
	}
}

func TestDeclareVector(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	id, err := u.Declare("origin", typing.Vector, NoScope)
	if err != nil {
		t.Fatal(err)
	}

	v := u.Symbol(id)
	if v.Ofs != ReservedOfs {
		t.Errorf("vector offset = %d; want %d", v.Ofs, ReservedOfs)
	}

	for i, name := range []string{"origin_x", "origin_y", "origin_z"} {
		cid := id + SymbolID(i+1)
		c := u.Symbol(cid)

		if c.Name != name || c.Type != typing.Float || c.Ofs != v.Ofs+i {
			t.Errorf("component %d = %s; want %s at %d", i, spew.Sdump(c), name, v.Ofs+i)
		}

		if owner := u.SlotOwner(v.Ofs + i); owner != cid {
			t.Errorf("SlotOwner(%d) = %d; want %d", v.Ofs+i, owner, cid)
		}
	}

	if u.NumGlobals() != ReservedOfs+3 {
		t.Errorf("NumGlobals() = %d; want %d", u.NumGlobals(), ReservedOfs+3)
	}
}

func TestDeclareFields(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	health, _ := u.Declare("health", u.Types().FieldOf(typing.Float), NoScope)
	velocity, _ := u.Declare("velocity", u.Types().FieldOf(typing.Vector), NoScope)
	frags, _ := u.Declare("frags", u.Types().FieldOf(typing.Float), NoScope)

	checks := []struct {
		id  SymbolID
		ofs uint32
	}{
		{health, 0},
		{velocity, 1},
		{velocity + 1, 1},
		{velocity + 2, 2},
		{velocity + 3, 3},
		{frags, 4},
	}

	for _, c := range checks {
		sym := u.Symbol(c.id)
		if got := u.GlobalWord(sym.Ofs); got != c.ofs {
			t.Errorf("field offset of %s = %d; want %d", sym.Name, got, c.ofs)
		}
	}

	if u.EntityFields() != 5 {
		t.Errorf("EntityFields() = %d; want 5", u.EntityFields())
	}

	if id, ok := u.FieldByOffset(4); !ok || id != frags {
		t.Errorf("FieldByOffset(4) = %d, %v; want %d, true", id, ok, frags)
	}
}

func TestDeclareRegisterOverflow(t *testing.T) {
	limits := config.DefaultLimits()
	limits.Registers = ReservedOfs + 2

	u := NewUnit(config.Options{}, limits)
	u.Open()

	if _, err := u.Declare("v", typing.Vector, NoScope); !IsCapacity(err) {
		t.Fatalf("Declare(vector) = %v; want a capacity error", err)
	}

	if u.NumSymbols() != 0 || u.NumGlobals() != ReservedOfs {
		t.Errorf("failed declaration left %d symbols, %d globals", u.NumSymbols(), u.NumGlobals())
	}

	if _, err := u.Declare("a", typing.Float, NoScope); err != nil {
		t.Errorf("Declare(float) = %v", err)
	}
}

func TestDeclareFieldWithoutElement(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	if _, err := u.Declare("x", &typing.Type{Kind: typing.KindField}, NoScope); err == nil {
		t.Fatal("Declare(field without element type) succeeded")
	}

	if u.NumSymbols() != 0 || u.NumGlobals() != ReservedOfs {
		t.Errorf("failed declaration left %d symbols, %d globals", u.NumSymbols(), u.NumGlobals())
	}
}
