// Package cmd is the top-level "driver" package for hcc: it parses the command
// line, compiles the files of a source list into one unit and writes the
// resulting artifacts.
package cmd

import (
	"hcc/config"
	"hcc/disasm"
	"hcc/generate"
	"hcc/progs"
	"hcc/report"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// FileCompiler compiles the text of one source file into a unit.  The
// declaration front end of package syntax is one; a full statement compiler
// plugs in the same way.
type FileCompiler interface {
	CompileFile(u *progs.Unit, src, name string) error
}

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	proj *config.Project

	// sourceList is the name of the source list relative to the source
	// directory.
	sourceList string

	fc FileCompiler
	u  *progs.Unit

	// Disassemble names the functions to list after compilation.
	Disassemble []string
}

// NewCompiler creates a compiler for the given project and source list.
func NewCompiler(proj *config.Project, sourceList string, fc FileCompiler) *Compiler {
	u := progs.NewUnit(proj.Options, proj.Limits)
	u.Sentinels = proj.Sentinels

	return &Compiler{
		proj:       proj,
		sourceList: sourceList,
		fc:         fc,
		u:          u,
	}
}

// Unit returns the compiler's compilation unit.
func (c *Compiler) Unit() *progs.Unit {
	return c.u
}

// Run compiles every file of the source list and, if the unit closes cleanly,
// writes the progdefs header, the progs image and the precache manifest.
// Nothing is written when any file fails to compile.
func (c *Compiler) Run() error {
	manifest, err := config.LoadManifest(c.proj.Path(c.sourceList))
	if err != nil {
		return err
	}

	if err := c.Compile(manifest.Sources); err != nil {
		return err
	}

	return c.Emit(manifest.Dest)
}

// Compile opens the unit, compiles the given files in order and closes the
// unit.  It stops at the first file that fails.
func (c *Compiler) Compile(sources []string) error {
	if err := c.u.Open(); err != nil {
		return err
	}

	opts := c.proj.Options
	for _, name := range sources {
		if !opts.Quiet {
			report.ReportInfo("compiling %s", name)
		}

		buff, err := ioutil.ReadFile(c.proj.Path(name))
		if err != nil {
			return errors.Wrapf(err, "couldn't open %s", name)
		}

		registers, statements, functions := c.u.NumGlobals(), len(c.u.Statements()), len(c.u.Functions())

		if err := c.fc.CompileFile(c.u, string(buff), name); err != nil {
			return err
		}

		if !opts.Quiet && opts.FileInfo {
			c.reportFileInfo(
				c.u.NumGlobals()-registers,
				len(c.u.Statements())-statements,
				len(c.u.Functions())-functions,
			)
		}
	}

	ok, errs := c.u.Close()

	if !opts.NoWarnings {
		for _, warning := range c.u.Warnings() {
			report.ReportWarning("%s", warning)
		}
	}

	if !ok {
		for _, err := range errs {
			report.ReportError("Compile Error", err)
		}

		return errors.Errorf("%d errors in %s", len(errs), c.sourceList)
	}

	return nil
}

// Emit writes the artifacts of the closed unit: the requested function
// listings, the progdefs header, the image named dest and the precache
// manifest.  The header's checksum is written into the image.
func (c *Compiler) Emit(dest string) error {
	for _, name := range c.Disassemble {
		listing, err := disasm.Function(c.u, name)
		if err != nil {
			return err
		}

		report.ReportListing(listing)
	}

	crc, err := c.writeProgdefs(c.proj.Path(c.proj.Output.Progdefs))
	if err != nil {
		return err
	}

	hdr, err := c.writeImage(c.proj.Path(dest), crc)
	if err != nil {
		return err
	}
	c.reportImageStats(dest, hdr)

	if err := c.writeManifest(c.proj.Path(c.proj.Output.Manifest)); err != nil {
		return err
	}
	c.reportPrecacheStats()

	return nil
}

// -----------------------------------------------------------------------------

func (c *Compiler) writeProgdefs(path string) (uint16, error) {
	report.ReportInfo("writing %s", path)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.Wrapf(err, "couldn't open %s", path)
	}
	defer f.Close()

	return generate.WriteProgdefs(f, c.u)
}

func (c *Compiler) writeImage(path string, crc uint16) (*generate.Header, error) {
	report.ReportInfo("writing %s", path)

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open %s", path)
	}
	defer f.Close()

	return generate.WriteImage(f, c.u, crc)
}

func (c *Compiler) writeManifest(path string) error {
	report.ReportInfo("writing %s", path)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open %s", path)
	}
	defer f.Close()

	return generate.WriteManifest(f, c.u)
}

// -----------------------------------------------------------------------------

func (c *Compiler) reportFileInfo(registers, statements, functions int) {
	report.ReportStats("", []report.Stat{
		{Name: "registers", Used: registers, Bytes: registers * 4},
		{Name: "statements", Used: statements, Bytes: statements * generate.StatementSize},
		{Name: "functions", Used: functions, Bytes: functions * generate.FunctionSize},
	})
}

func (c *Compiler) reportImageStats(dest string, hdr *generate.Header) {
	limits := c.proj.Limits

	report.ReportStats("object file "+dest, []report.Stat{
		{Name: "registers", Used: int(hdr.NumGlobals), Capacity: limits.Registers, Bytes: int(hdr.NumGlobals) * 4},
		{Name: "statements", Used: int(hdr.NumStatements), Capacity: limits.Statements, Bytes: int(hdr.NumStatements) * generate.StatementSize},
		{Name: "functions", Used: int(hdr.NumFunctions), Capacity: limits.Functions, Bytes: int(hdr.NumFunctions) * generate.FunctionSize},
		{Name: "global defs", Used: int(hdr.NumGlobalDefs), Capacity: limits.Globals, Bytes: int(hdr.NumGlobalDefs) * generate.DefSize},
		{Name: "field defs", Used: int(hdr.NumFieldDefs), Capacity: limits.Fields, Bytes: int(hdr.NumFieldDefs) * generate.DefSize},
		{Name: "string heap", Used: int(hdr.NumStrings), Capacity: limits.Strings},
		{Name: "entity fields", Used: int(hdr.EntityFields)},
		{Name: "total size", Used: int(hdr.Size())},
	})
}

func (c *Compiler) reportPrecacheStats() {
	limits := c.proj.Limits

	report.ReportStats("precache", []report.Stat{
		{Name: "precache_sound", Used: len(c.u.Sounds()), Capacity: limits.Sounds},
		{Name: "precache_model", Used: len(c.u.Models()), Capacity: limits.Models},
		{Name: "precache_file", Used: len(c.u.Files()), Capacity: limits.Files},
	})
}
