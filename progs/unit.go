// Package progs holds the object model of a compilation unit: the symbol
// sequence, the string heap and the fixed-capacity object tables that are
// serialized into a progs image.  A unit is populated by the front end while it
// is open and becomes read-only once it is closed.
package progs

import (
	"hcc/common"
	"hcc/config"
	"hcc/typing"
)

// State is the lifecycle state of a unit.
type State int

// Enumeration of unit states
const (
	StateEmpty       State = iota // Created but not yet opened.
	StateOpen                     // Accepting declarations and statements.
	StateClosedOK                 // Closed without errors: ready for emission.
	StateClosedError              // Closed with errors: must not be emitted.
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOpen:
		return "open"
	case StateClosedOK:
		return "closed"
	default:
		return "closed with errors"
	}
}

// Reserved storage layout at the start of the globals.
const (
	OfsReturn   = 1
	OfsParm0    = 4
	MaxParms    = 8
	ReservedOfs = 28
)

// Unit is a compilation unit: the whole program being compiled from the files
// of one source list.
type Unit struct {
	opts   config.Options
	limits config.Limits

	// Sentinels names the symbols closing the system globals and fields.
	Sentinels config.Sentinels

	state State
	types *typing.Registry

	strings StringHeap

	// symbols is the append-ordered symbol sequence.  Entry 0 is the reserved
	// sentinel.  index maps (name, scope) pairs to entries of symbols.
	symbols []Symbol
	index   map[symbolKey]SymbolID

	// globals is the flat storage array, one raw word per slot.  slotOwners
	// records the symbol most recently allocated at each slot.
	globals    []uint32
	slotOwners []SymbolID

	statements []Statement
	lines      []int32
	functions  []Function
	globalDefs []Def
	fieldDefs  []Def

	entityFields int32

	sounds []PrecacheEntry
	models []PrecacheEntry
	files  []PrecacheEntry

	// fileName is the heap offset of the name of the file being compiled.
	fileName int32

	warnings  []string
	defsBuilt bool
}

// NewUnit creates an empty unit with the given options and table capacities.
func NewUnit(opts config.Options, limits config.Limits) *Unit {
	return &Unit{
		opts:   opts,
		limits: limits,
		Sentinels: config.Sentinels{
			Globals: common.EndSysGlobals,
			Fields:  common.EndSysFields,
		},
	}
}

// Open resets every table and installs the sentinel entries.  It may only be
// called on an empty unit.
func (u *Unit) Open() error {
	if u.state != StateEmpty {
		return &StateError{Op: "open", State: u.state}
	}

	u.types = typing.NewRegistry()
	u.strings = newStringHeap(u.limits.Strings)

	u.symbols = []Symbol{{Name: "temp", Type: typing.Void}}
	u.index = make(map[symbolKey]SymbolID)

	u.globals = make([]uint32, ReservedOfs)
	u.slotOwners = make([]SymbolID, ReservedOfs)

	u.statements = []Statement{{}}
	u.lines = []int32{0}
	u.functions = []Function{{}}
	u.globalDefs = []Def{{}}
	u.fieldDefs = []Def{{}}

	u.entityFields = 0
	u.sounds, u.models, u.files = nil, nil, nil
	u.warnings = nil
	u.defsBuilt = false

	u.state = StateOpen
	return nil
}

// Close checks the finished unit.  Every top-level function must have been
// defined; if unreferenced function reporting is enabled, top-level functions
// after the system globals that are never referenced produce warnings.  Close
// returns whether the unit is fit for emission along with the errors found.
func (u *Unit) Close() (bool, []error) {
	if u.state != StateOpen {
		return false, []error{&StateError{Op: "close", State: u.state}}
	}

	var errs []error
	globalsDone := false
	for id := SymbolID(1); int(id) < len(u.symbols); id++ {
		sym := &u.symbols[id]

		if sym.Name == u.Sentinels.Globals {
			globalsDone = true
		}

		if sym.Type.Kind == typing.KindFunction && sym.Scope == NoScope {
			if !sym.Initialized {
				errs = append(errs, &UndefinedFunctionError{Name: sym.Name})
			}

			if u.opts.ShowUnrefFuncs && sym.RefCount == 0 && globalsDone {
				u.warnings = append(u.warnings, "unreferenced function '"+sym.Name+"'")
			}
		}
	}

	if len(errs) > 0 {
		u.state = StateClosedError
		return false, errs
	}

	u.state = StateClosedOK
	return true, nil
}

// State returns the lifecycle state of the unit.
func (u *Unit) State() State {
	return u.state
}

// Options returns the compile options of the unit.
func (u *Unit) Options() config.Options {
	return u.opts
}

// Limits returns the table capacities of the unit.
func (u *Unit) Limits() config.Limits {
	return u.limits
}

// Types returns the unit's type registry.
func (u *Unit) Types() *typing.Registry {
	return u.types
}

// Warnings returns the warnings produced while closing the unit.
func (u *Unit) Warnings() []string {
	return u.warnings
}

// Strings returns the unit's string heap.
func (u *Unit) Strings() *StringHeap {
	return &u.strings
}

// BeginFile records the name of the file about to be compiled.  Functions
// defined from now on are attributed to it.
func (u *Unit) BeginFile(name string) error {
	if err := u.expect("begin file", StateOpen); err != nil {
		return err
	}

	ofs, err := u.strings.Intern(name)
	if err != nil {
		return err
	}

	u.fileName = ofs
	return nil
}

// expect returns a StateError unless the unit is in the given state.
func (u *Unit) expect(op string, state State) error {
	if u.state != state {
		return &StateError{Op: op, State: u.state}
	}

	return nil
}
