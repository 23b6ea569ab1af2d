package progs

import (
	"fmt"

	"github.com/pkg/errors"
)

// CapacityError is returned when an append would grow a table past its
// configured capacity.  The table is left unchanged.
type CapacityError struct {
	// Table names the table that overflowed.
	Table string

	// Limit is the configured capacity of the table.
	Limit int
}

func (ce *CapacityError) Error() string {
	return fmt.Sprintf("%s table overflow: capacity of %d exceeded", ce.Table, ce.Limit)
}

// IsCapacity reports whether err is or wraps a CapacityError.
func IsCapacity(err error) bool {
	var ce *CapacityError
	return errors.As(err, &ce)
}

// checkCapacity returns a CapacityError if growing a table of length count by
// n entries would exceed limit.
func checkCapacity(table string, count, n, limit int) error {
	if count+n > limit {
		return &CapacityError{Table: table, Limit: limit}
	}

	return nil
}

// -----------------------------------------------------------------------------

// StateError is returned when an operation is attempted on a unit that is not
// in the state the operation requires.
type StateError struct {
	Op    string
	State State
}

func (se *StateError) Error() string {
	return fmt.Sprintf("%s: unit is %s", se.Op, se.State)
}

// UndefinedFunctionError reports a top-level function that was declared but
// never given a body or builtin binding.
type UndefinedFunctionError struct {
	Name string
}

func (ue *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("function '%s' was not defined", ue.Name)
}
