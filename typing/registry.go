package typing

// The basic, non-composite types.  These are shared by every registry.
var (
	Void    = &Type{Kind: KindVoid}
	String  = &Type{Kind: KindString}
	Float   = &Type{Kind: KindFloat}
	Vector  = &Type{Kind: KindVector}
	Entity  = &Type{Kind: KindEntity}
	Pointer = &Type{Kind: KindPointer}
)

// Registry interns composite type descriptors so that structurally identical
// types share a single descriptor.
type Registry struct {
	types []*Type

	// function is the pre-registered `void()` type.  It is installed first so
	// that forward declarations of state functions resolve to it.
	function *Type
}

// NewRegistry creates a registry with the shared function type installed.
func NewRegistry() *Registry {
	fn := &Type{Kind: KindFunction, Aux: Void}
	return &Registry{
		types:    []*Type{fn},
		function: fn,
	}
}

// Function returns the shared `void()` descriptor.
func (r *Registry) Function() *Type {
	return r.function
}

// Find returns the registered descriptor equal to t, registering t if no such
// descriptor exists yet.
func (r *Registry) Find(t *Type) *Type {
	switch t.Kind {
	case KindField, KindFunction:
		for _, rt := range r.types {
			if rt.Equals(t) {
				return rt
			}
		}

		r.types = append(r.types, t)
		return t
	default:
		return Basic(t.Kind)
	}
}

// FieldOf returns the interned field type addressing elem.
func (r *Registry) FieldOf(elem *Type) *Type {
	return r.Find(&Type{Kind: KindField, Aux: elem})
}

// FuncOf returns the interned function type with the given signature.
func (r *Registry) FuncOf(ret *Type, params ...*Type) *Type {
	return r.Find(&Type{Kind: KindFunction, Aux: ret, Params: params})
}

// Len returns the number of registered composite types.
func (r *Registry) Len() int {
	return len(r.types)
}

// Basic returns the shared descriptor for a non-composite kind.
func Basic(k Kind) *Type {
	switch k {
	case KindString:
		return String
	case KindFloat:
		return Float
	case KindVector:
		return Vector
	case KindEntity:
		return Entity
	case KindPointer:
		return Pointer
	default:
		return Void
	}
}
