package typing

import "strings"

// Kind is one of the closed set of value kinds known to the virtual machine.
// The numeric values are part of the progs format: they are written into the
// type field of every global and field descriptor.
type Kind uint16

// Enumeration of value kinds
const (
	KindVoid = Kind(iota)
	KindString
	KindFloat
	KindVector
	KindEntity
	KindField
	KindFunction
	KindPointer

	numKinds
)

// kindSizes is the number of storage slots a value of each kind occupies.
var kindSizes = [numKinds]int{1, 1, 1, 3, 1, 1, 1, 1}

// Size returns the number of 4-byte storage slots occupied by a value of the
// given kind.
func Size(k Kind) int {
	if k >= numKinds {
		return 1
	}

	return kindSizes[k]
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Repr returns the source-level keyword for a kind.
func (k Kind) Repr() string {
	switch k {
	case KindVoid:
		return "void"
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindVector:
		return "vector"
	case KindEntity:
		return "entity"
	case KindField:
		return "field"
	case KindFunction:
		return "function"
	case KindPointer:
		return "pointer"
	default:
		return "bad type"
	}
}

// -----------------------------------------------------------------------------

// Type is a type descriptor.  For field types, Aux is the element type the
// field addresses.  For function types, Aux is the return type and Params holds
// the parameter types.  A function with Varargs accepts any number of extra
// arguments after Params.
type Type struct {
	Kind    Kind
	Aux     *Type
	Params  []*Type
	Varargs bool
}

// ComponentCount returns the number of synthetic component symbols that
// immediately follow a symbol of this type in the symbol sequence.  Vectors
// and vector fields are followed by their x, y and z components.
func (t *Type) ComponentCount() int {
	switch t.Kind {
	case KindVector:
		return 3
	case KindField:
		if t.Aux != nil && t.Aux.Kind == KindVector {
			return 3
		}
	}

	return 0
}

// ElemKind returns the kind addressed by a field type.  For any other type it
// is the kind of the type itself.
func (t *Type) ElemKind() Kind {
	if t.Kind == KindField && t.Aux != nil {
		return t.Aux.Kind
	}

	return t.Kind
}

// Equals tests whether two type descriptors are structurally identical.
func (t *Type) Equals(other *Type) bool {
	if t == other {
		return true
	}

	if t == nil || other == nil || t.Kind != other.Kind || len(t.Params) != len(other.Params) {
		return false
	}

	if t.Varargs != other.Varargs {
		return false
	}

	if (t.Aux == nil) != (other.Aux == nil) {
		return false
	}

	if t.Aux != nil && !t.Aux.Equals(other.Aux) {
		return false
	}

	for i, p := range t.Params {
		if !p.Equals(other.Params[i]) {
			return false
		}
	}

	return true
}

// Repr returns the type as it would be written in source.
func (t *Type) Repr() string {
	switch t.Kind {
	case KindField:
		return "." + t.Aux.Repr()
	case KindFunction:
		sb := strings.Builder{}
		sb.WriteString(t.Aux.Repr())
		sb.WriteRune('(')
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Repr())
		}
		if t.Varargs {
			if len(t.Params) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
		}
		sb.WriteRune(')')
		return sb.String()
	default:
		return t.Kind.Repr()
	}
}
