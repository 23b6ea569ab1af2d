package report

import "fmt"

// CompileError is an error in a source file.  It propagates by return value up
// to the file boundary, where the driver reports it.
type CompileError struct {
	// The file the error occurred in, as named in the source list.
	File string

	// The one-based line the error occurred on.
	Line int

	// The error message.
	Message string
}

func (ce *CompileError) Error() string {
	return formatCompileMessage(ce.File, ce.Line, "", ce.Message)
}

// Raise creates a new compile error.
func Raise(file string, line int, msg string, args ...interface{}) *CompileError {
	return &CompileError{File: file, Line: line, Message: fmt.Sprintf(msg, args...)}
}

// formatCompileMessage renders a compile message the way text editors expect
// to find it: `file(line) : [label : ]message`.
func formatCompileMessage(file string, line int, label, msg string) string {
	if label == "" {
		return fmt.Sprintf("%s(%d) : %s", file, line, msg)
	}

	return fmt.Sprintf("%s(%d) : %s : %s", file, line, label, msg)
}
