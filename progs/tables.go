package progs

import (
	"math"

	"github.com/pkg/errors"
)

// Statement is one emitted instruction.  Depending on the opcode, the operands
// are storage offsets or branch deltas.
type Statement struct {
	Op      Opcode
	A, B, C int16
}

// Function is a compiled function record.  A negative FirstStatement is the
// negated number of a builtin implemented by the engine.
type Function struct {
	FirstStatement int32
	ParmStart      int32
	Locals         int32
	Profile        int32
	SName          int32
	SFile          int32
	NumParms       int32
	ParmSize       [MaxParms]byte
}

// Def is a global or field descriptor as persisted in the image.
type Def struct {
	// Type is the kind of the described value, or'ed with DefSaveGlobal when
	// the engine must preserve the value across save games.
	Type uint16
	Ofs  uint16

	SName int32
}

// DefSaveGlobal flags a descriptor whose value is saved with the game state.
const DefSaveGlobal uint16 = 1 << 15

// -----------------------------------------------------------------------------

// AddStatement appends an instruction emitted for the given source line and
// returns its index.
func (u *Unit) AddStatement(op Opcode, a, b, c int16, line int) (int, error) {
	if err := u.expect("add statement", StateOpen); err != nil {
		return 0, err
	}

	if err := checkCapacity("statement", len(u.statements), 1, u.limits.Statements); err != nil {
		return 0, err
	}

	u.statements = append(u.statements, Statement{Op: op, A: a, B: b, C: c})
	u.lines = append(u.lines, int32(line))
	return len(u.statements) - 1, nil
}

// Statements returns the instruction table including the sentinel at index 0.
func (u *Unit) Statements() []Statement {
	return u.statements
}

// StatementLine returns the source line the instruction at index i was
// emitted for.
func (u *Unit) StatementLine(i int) int {
	if i < 0 || i >= len(u.lines) {
		return 0
	}

	return int(u.lines[i])
}

// AddFunction appends a function record and returns its index.
func (u *Unit) AddFunction(f Function) (int32, error) {
	if err := u.expect("add function", StateOpen); err != nil {
		return 0, err
	}

	if err := checkCapacity("function", len(u.functions), 1, u.limits.Functions); err != nil {
		return 0, err
	}

	u.functions = append(u.functions, f)
	return int32(len(u.functions) - 1), nil
}

// DefineFunction binds the function symbol id to a new function record.  The
// record's name and file are filled in from the symbol and the current file.
// The symbol's storage receives the function index and it is marked
// initialized.
func (u *Unit) DefineFunction(id SymbolID, f Function) (int32, error) {
	if err := u.expect("define function", StateOpen); err != nil {
		return 0, err
	}

	if !u.validID(id) {
		return 0, errors.Errorf("define function: invalid symbol %d", id)
	}

	if err := checkCapacity("function", len(u.functions), 1, u.limits.Functions); err != nil {
		return 0, err
	}

	name, err := u.strings.Intern(u.symbols[id].Name)
	if err != nil {
		return 0, err
	}

	f.SName = name
	f.SFile = u.fileName

	ndx, err := u.AddFunction(f)
	if err != nil {
		return 0, err
	}

	u.globals[u.symbols[id].Ofs] = uint32(ndx)
	u.symbols[id].Initialized = true
	return ndx, nil
}

// Functions returns the function table including the sentinel at index 0.
func (u *Unit) Functions() []Function {
	return u.functions
}

// FunctionByName returns the index of the first function record whose name is
// name.
func (u *Unit) FunctionByName(name string) (int, bool) {
	for i := range u.functions {
		if u.strings.String(u.functions[i].SName) == name {
			return i, true
		}
	}

	return 0, false
}

// -----------------------------------------------------------------------------

// AllocTemp allocates n anonymous storage slots for the statement emitter and
// returns the offset of the first.
func (u *Unit) AllocTemp(n int) (int, error) {
	if err := u.expect("allocate storage", StateOpen); err != nil {
		return 0, err
	}

	if err := checkCapacity("registers", len(u.globals), n, u.limits.Registers); err != nil {
		return 0, err
	}

	ofs := len(u.globals)
	u.allocSlots(NoSymbol, n)
	return ofs, nil
}

// NumGlobals returns the number of allocated storage slots.
func (u *Unit) NumGlobals() int {
	return len(u.globals)
}

// Globals returns the storage array.  The slice must not be modified.
func (u *Unit) Globals() []uint32 {
	return u.globals
}

// GlobalWord returns the raw word stored at ofs.
func (u *Unit) GlobalWord(ofs int) uint32 {
	if ofs < 0 || ofs >= len(u.globals) {
		return 0
	}

	return u.globals[ofs]
}

// SetGlobalWord stores a raw word at ofs.
func (u *Unit) SetGlobalWord(ofs int, word uint32) error {
	if err := u.expect("store global", StateOpen); err != nil {
		return err
	}

	if ofs < 0 || ofs >= len(u.globals) {
		return errors.Errorf("store global: offset %d out of range", ofs)
	}

	u.globals[ofs] = word
	return nil
}

// SetGlobalFloat stores a float at ofs.
func (u *Unit) SetGlobalFloat(ofs int, f float32) error {
	return u.SetGlobalWord(ofs, math.Float32bits(f))
}

// GlobalFloat returns the float stored at ofs.
func (u *Unit) GlobalFloat(ofs int) float32 {
	return math.Float32frombits(u.GlobalWord(ofs))
}

// SetGlobalString interns s and stores its offset at ofs.
func (u *Unit) SetGlobalString(ofs int, s string) error {
	if err := u.expect("store global", StateOpen); err != nil {
		return err
	}

	sofs, err := u.strings.Intern(s)
	if err != nil {
		return err
	}

	return u.SetGlobalWord(ofs, uint32(sofs))
}

// EntityFields returns the number of entity field slots.
func (u *Unit) EntityFields() int32 {
	return u.entityFields
}

// GlobalDefs returns the global descriptor table including the sentinel.
func (u *Unit) GlobalDefs() []Def {
	return u.globalDefs
}

// FieldDefs returns the field descriptor table including the sentinel.
func (u *Unit) FieldDefs() []Def {
	return u.fieldDefs
}
