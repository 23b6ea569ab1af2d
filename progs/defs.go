package progs

import (
	"hcc/common"
	"hcc/typing"
	"strings"
)

// BuildDefs fills the global and field descriptor tables from the symbol
// sequence, then aligns the string heap.  It runs once: later calls return
// immediately.  The unit must have closed without errors.
func (u *Unit) BuildDefs() error {
	if err := u.expect("build descriptors", StateClosedOK); err != nil {
		return err
	}

	if u.defsBuilt {
		return nil
	}

	// both tables are checked before anything is appended
	numFields := 0
	for _, sym := range u.symbols[1:] {
		if sym.Type.Kind == typing.KindField {
			numFields++
		}
	}

	if err := checkCapacity("field", len(u.fieldDefs), numFields, u.limits.Fields); err != nil {
		return err
	}

	if err := checkCapacity("global", len(u.globalDefs), len(u.symbols)-1, u.limits.Globals); err != nil {
		return err
	}

	heapSize := u.strings.Size()
	globalDefs, fieldDefs, err := u.buildDefs()
	if err != nil {
		u.strings.truncate(heapSize)
		return err
	}

	u.globalDefs = append(u.globalDefs, globalDefs...)
	u.fieldDefs = append(u.fieldDefs, fieldDefs...)

	u.strings.Align()
	u.defsBuilt = true
	return nil
}

// buildDefs builds the descriptors of every declared symbol.  Only the string
// heap is modified.
func (u *Unit) buildDefs() (globalDefs, fieldDefs []Def, err error) {
	var localName int32
	if u.opts.OptimizeNames {
		if localName, err = u.strings.Intern(common.LocalNamePlaceholder); err != nil {
			return nil, nil, err
		}
	}

	for _, sym := range u.symbols[1:] {
		def := Def{Type: uint16(sym.Type.Kind), Ofs: uint16(sym.Ofs)}
		if u.persisted(&sym) {
			def.Type |= DefSaveGlobal
		}

		if u.opts.OptimizeNames && (sym.Scope != NoScope ||
			(def.Type&DefSaveGlobal == 0 && sym.Type.Kind < typing.KindField)) {
			def.SName = localName
		} else if def.SName, err = u.strings.Intern(sym.Name); err != nil {
			return nil, nil, err
		}

		if sym.Type.Kind == typing.KindField {
			fieldDefs = append(fieldDefs, Def{
				Type:  uint16(sym.Type.Aux.Kind),
				Ofs:   uint16(u.globals[sym.Ofs]),
				SName: def.SName,
			})
		}

		globalDefs = append(globalDefs, def)
	}

	return globalDefs, fieldDefs, nil
}

// persisted reports whether the value of sym must survive a save game: it is
// an uninitialized top-level variable that is neither a function nor a field.
// Constant string globals are excluded unless legacy behavior is requested.
func (u *Unit) persisted(sym *Symbol) bool {
	if sym.Initialized || sym.Scope != NoScope {
		return false
	}

	if sym.Type.Kind == typing.KindFunction || sym.Type.Kind == typing.KindField {
		return false
	}

	return u.opts.Legacy || !strings.HasPrefix(sym.Name, common.ConstantStringPrefix)
}
