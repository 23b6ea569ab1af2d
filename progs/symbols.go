package progs

import (
	"hcc/typing"

	"github.com/pkg/errors"
)

// SymbolID identifies a symbol by its position in the symbol sequence.
type SymbolID int

// NoScope is the scope of top-level symbols.  It refers to the reserved
// sentinel symbol, which can never enclose anything.
const NoScope SymbolID = 0

// NoSymbol marks a storage slot that no declared symbol owns.
const NoSymbol SymbolID = -1

// Symbol is a named global, field or function of the unit.
type Symbol struct {
	// Name is the name of the symbol as it appears in source.
	Name string

	// Type is the interned type descriptor of the symbol.
	Type *typing.Type

	// Ofs is the storage slot of the symbol's value.
	Ofs int

	// Initialized is set once the symbol has a value: a constant initializer,
	// a function body or a builtin binding.
	Initialized bool

	// Scope is the function enclosing the symbol or NoScope.
	Scope SymbolID

	// RefCount counts the references to the symbol made by compiled code.
	RefCount int
}

type symbolKey struct {
	name  string
	scope SymbolID
}

// Declare returns the symbol named name in scope, creating it if it does not
// exist yet.  An existing symbol is returned unchanged whatever type is
// requested: callers must check Initialized and the type before treating a
// second declaration as valid.  Declaring a vector also declares its three
// float components; declaring a field allocates its entity storage.
func (u *Unit) Declare(name string, t *typing.Type, scope SymbolID) (SymbolID, error) {
	if err := u.expect("declare", StateOpen); err != nil {
		return NoSymbol, err
	}

	if id, ok := u.index[symbolKey{name, scope}]; ok {
		return id, nil
	}

	if scope != NoScope && !u.validID(scope) {
		return NoSymbol, errors.Errorf("declare `%s`: invalid scope %d", name, scope)
	}

	if t.Kind == typing.KindField && t.Aux == nil {
		return NoSymbol, errors.Errorf("declare `%s`: field type has no element type", name)
	}

	t = u.types.Find(t)

	// the whole symbol group is checked up front so that a failing
	// declaration never leaves a partial vector behind
	if err := checkCapacity("registers", len(u.globals), slotsFor(t), u.limits.Registers); err != nil {
		return NoSymbol, err
	}

	for _, suffix := range componentSuffixes[:t.ComponentCount()] {
		if _, ok := u.index[symbolKey{name + suffix, scope}]; ok {
			return NoSymbol, errors.Errorf("declare `%s`: component `%s` is already declared", name, name+suffix)
		}
	}

	return u.declare(name, t, scope), nil
}

var componentSuffixes = [3]string{"_x", "_y", "_z"}

// slotsFor returns the number of storage slots a symbol of type t and its
// components occupy.
func slotsFor(t *typing.Type) int {
	switch t.Kind {
	case typing.KindVector:
		return 3
	case typing.KindField:
		return 1 + t.ComponentCount()
	default:
		return typing.Size(t.Kind)
	}
}

// declare appends a symbol whose storage has already been checked.
func (u *Unit) declare(name string, t *typing.Type, scope SymbolID) SymbolID {
	id := SymbolID(len(u.symbols))
	u.symbols = append(u.symbols, Symbol{
		Name:  name,
		Type:  t,
		Ofs:   len(u.globals),
		Scope: scope,
	})
	u.index[symbolKey{name, scope}] = id

	switch t.Kind {
	case typing.KindVector:
		// a vector's storage is the storage of its components
		for _, suffix := range componentSuffixes {
			u.declare(name+suffix, typing.Float, scope)
		}
	case typing.KindField:
		u.allocSlots(id, 1)
		u.globals[u.symbols[id].Ofs] = uint32(u.entityFields)

		if t.Aux.Kind == typing.KindVector {
			floatField := u.types.FieldOf(typing.Float)
			for _, suffix := range componentSuffixes {
				u.declare(name+suffix, floatField, scope)
			}
		} else {
			u.entityFields += int32(typing.Size(t.Aux.Kind))
		}
	default:
		u.allocSlots(id, typing.Size(t.Kind))
	}

	return id
}

// allocSlots appends n zeroed storage slots owned by id.
func (u *Unit) allocSlots(id SymbolID, n int) {
	for i := 0; i < n; i++ {
		u.globals = append(u.globals, 0)
		u.slotOwners = append(u.slotOwners, id)
	}
}

// Lookup returns the symbol named name in scope.
func (u *Unit) Lookup(name string, scope SymbolID) (SymbolID, bool) {
	id, ok := u.index[symbolKey{name, scope}]
	return id, ok
}

// Symbol returns the symbol with the given ID.  It panics if id is invalid.
func (u *Unit) Symbol(id SymbolID) *Symbol {
	return &u.symbols[id]
}

// Symbols returns the whole symbol sequence including the sentinel at index 0.
// The slice must not be modified.
func (u *Unit) Symbols() []Symbol {
	return u.symbols
}

// NumSymbols returns the number of declared symbols, excluding the sentinel.
func (u *Unit) NumSymbols() int {
	return len(u.symbols) - 1
}

// Reference records a reference to a symbol from compiled code.
func (u *Unit) Reference(id SymbolID) {
	if u.validID(id) {
		u.symbols[id].RefCount++
	}
}

// MarkInitialized marks a symbol as having a value.
func (u *Unit) MarkInitialized(id SymbolID) {
	if u.validID(id) {
		u.symbols[id].Initialized = true
	}
}

// SlotOwner returns the symbol allocated at storage slot ofs.  Reserved slots
// belong to the sentinel symbol; unknown slots return NoSymbol.
func (u *Unit) SlotOwner(ofs int) SymbolID {
	if ofs < 0 || ofs >= len(u.slotOwners) {
		return NoSymbol
	}

	return u.slotOwners[ofs]
}

// FieldByOffset returns the field symbol whose entity offset is ofs.  It scans
// the field symbols in declaration order.
func (u *Unit) FieldByOffset(ofs int32) (SymbolID, bool) {
	for id := SymbolID(1); int(id) < len(u.symbols); id++ {
		sym := &u.symbols[id]
		if sym.Type.Kind != typing.KindField {
			continue
		}

		if int32(u.globals[sym.Ofs]) == ofs {
			return id, true
		}
	}

	return NoSymbol, false
}

func (u *Unit) validID(id SymbolID) bool {
	return id > 0 && int(id) < len(u.symbols)
}
