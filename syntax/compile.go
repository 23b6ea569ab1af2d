package syntax

import "hcc/progs"

// Compiler compiles the declarations of source files into a unit.
type Compiler struct{}

// CompileFile compiles one source file into u.
func (Compiler) CompileFile(u *progs.Unit, src, name string) error {
	return CompileFile(u, src, name)
}

// CompileFile enters the declarations of the source file named name into u.
// Functions declared in the file are attributed to it.  Compilation stops at
// the first error.
func CompileFile(u *progs.Unit, src, name string) error {
	if err := u.BeginFile(name); err != nil {
		return err
	}

	return NewParser(u, name, src).Parse()
}
