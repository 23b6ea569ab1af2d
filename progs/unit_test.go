package progs

import (
	"hcc/config"
	"hcc/typing"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func newOpenUnit(t *testing.T, opts config.Options) *Unit {
	t.Helper()

	u := NewUnit(opts, config.DefaultLimits())
	if err := u.Open(); err != nil {
		t.Fatalf("Open() = %v", err)
	}

	return u
}

func TestOpenInstallsSentinels(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	if n := len(u.Statements()); n != 1 {
		t.Errorf("len(Statements()) = %d; want 1", n)
	}
	if n := len(u.Functions()); n != 1 {
		t.Errorf("len(Functions()) = %d; want 1", n)
	}
	if n := len(u.GlobalDefs()); n != 1 {
		t.Errorf("len(GlobalDefs()) = %d; want 1", n)
	}
	if n := len(u.FieldDefs()); n != 1 {
		t.Errorf("len(FieldDefs()) = %d; want 1", n)
	}
	if n := u.Strings().Size(); n != 1 {
		t.Errorf("Strings().Size() = %d; want 1", n)
	}
	if n := u.NumGlobals(); n != ReservedOfs {
		t.Errorf("NumGlobals() = %d; want %d", n, ReservedOfs)
	}
	if name := u.Symbols()[0].Name; name != "temp" {
		t.Errorf("Symbols()[0].Name = %q; want %q", name, "temp")
	}
	if owner := u.SlotOwner(OfsReturn); owner != 0 {
		t.Errorf("SlotOwner(OfsReturn) = %d; want 0", owner)
	}
}

func TestOpenTwice(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	if err := u.Open(); err == nil {
		t.Error("second Open() succeeded")
	}
}

func TestEmptyUnitCloses(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	ok, errs := u.Close()
	if !ok || len(errs) != 0 {
		t.Fatalf("Close() = %v, %v; want true, nil", ok, errs)
	}

	if u.State() != StateClosedOK {
		t.Errorf("State() = %v; want %v", u.State(), StateClosedOK)
	}
}

func TestUndefinedFunction(t *testing.T) {
	u := newOpenUnit(t, config.Options{})

	if _, err := u.Declare("foo", u.Types().Function(), NoScope); err != nil {
		t.Fatal(err)
	}

	ok, errs := u.Close()
	if ok {
		t.Fatal("Close() succeeded with an undefined function")
	}

	if len(errs) != 1 {
		t.Fatalf("Close() returned %d errors; want 1:\n%s", len(errs), spew.Sdump(errs))
	}

	want := "function 'foo' was not defined"
	if errs[0].Error() != want {
		t.Errorf("error = %q; want %q", errs[0].Error(), want)
	}

	if u.State() != StateClosedError {
		t.Errorf("State() = %v; want %v", u.State(), StateClosedError)
	}

	if err := u.BuildDefs(); err == nil {
		t.Error("BuildDefs() succeeded on a unit closed with errors")
	}
}

func TestUnreferencedFunctions(t *testing.T) {
	u := newOpenUnit(t, config.Options{ShowUnrefFuncs: true})
	fn := u.Types().Function()

	declareDefined := func(name string) SymbolID {
		id, err := u.Declare(name, fn, NoScope)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := u.DefineFunction(id, Function{FirstStatement: -1}); err != nil {
			t.Fatal(err)
		}
		return id
	}

	declareDefined("main")
	if _, err := u.Declare(u.Sentinels.Globals, typing.Void, NoScope); err != nil {
		t.Fatal(err)
	}
	declareDefined("unused")
	u.Reference(declareDefined("used"))

	if ok, errs := u.Close(); !ok {
		t.Fatalf("Close() failed: %v", errs)
	}

	warnings := u.Warnings()
	if len(warnings) != 1 || warnings[0] != "unreferenced function 'unused'" {
		t.Errorf("Warnings() = %q; want [unreferenced function 'unused']", warnings)
	}
}

func TestMutationAfterClose(t *testing.T) {
	u := newOpenUnit(t, config.Options{})
	u.Close()

	if _, err := u.Declare("x", typing.Float, NoScope); err == nil {
		t.Error("Declare() succeeded on a closed unit")
	}
	if _, err := u.AddStatement(OpDone, 0, 0, 0, 1); err == nil {
		t.Error("AddStatement() succeeded on a closed unit")
	}
	if err := u.AddSound("misc/null.wav", 0); err == nil {
		t.Error("AddSound() succeeded on a closed unit")
	}
}
