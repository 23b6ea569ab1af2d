package config

import "github.com/pkg/errors"

// Limits holds the capacity of every fixed-size table of a compilation unit.
// The progs header stores counts in fixed-width fields, so a table may never
// grow past its limit.
type Limits struct {
	Strings    int `toml:"strings"`
	Statements int `toml:"statements"`
	Functions  int `toml:"functions"`
	Globals    int `toml:"globals"`
	Fields     int `toml:"fields"`
	Registers  int `toml:"registers"`
	Sounds     int `toml:"sounds"`
	Models     int `toml:"models"`
	Files      int `toml:"files"`
	DataPath   int `toml:"data-path"`
}

// DefaultLimits returns the capacities of the legacy compiler.  Images built
// with these limits are loadable by every engine version.
func DefaultLimits() Limits {
	return Limits{
		Strings:    500000,
		Statements: 65536,
		Functions:  8192,
		Globals:    16384,
		Fields:     1024,
		Registers:  16384,
		Sounds:     1024,
		Models:     1024,
		Files:      1024,
		DataPath:   64,
	}
}

// overlay replaces every limit that is set in other.
func (l *Limits) overlay(other Limits) {
	for _, pair := range []struct{ dst, src *int }{
		{&l.Strings, &other.Strings},
		{&l.Statements, &other.Statements},
		{&l.Functions, &other.Functions},
		{&l.Globals, &other.Globals},
		{&l.Fields, &other.Fields},
		{&l.Registers, &other.Registers},
		{&l.Sounds, &other.Sounds},
		{&l.Models, &other.Models},
		{&l.Files, &other.Files},
		{&l.DataPath, &other.DataPath},
	} {
		if *pair.src != 0 {
			*pair.dst = *pair.src
		}
	}
}

// Maximum values representable by the progs format: statement operands are
// signed 16-bit storage offsets and descriptor offsets are unsigned 16-bit.
const (
	maxOperand    = 1<<15 - 1
	maxDescriptor = 1<<16 - 1
)

// Validate checks that every limit is positive and representable in the
// progs format.
func (l Limits) Validate() error {
	named := []struct {
		name  string
		value int
	}{
		{"strings", l.Strings},
		{"statements", l.Statements},
		{"functions", l.Functions},
		{"globals", l.Globals},
		{"fields", l.Fields},
		{"registers", l.Registers},
		{"sounds", l.Sounds},
		{"models", l.Models},
		{"files", l.Files},
		{"data-path", l.DataPath},
	}

	for _, n := range named {
		if n.value <= 0 {
			return errors.Errorf("limit `%s` must be positive", n.name)
		}
	}

	if l.Registers > maxOperand {
		return errors.Errorf("limit `registers` (%d) exceeds the operand range of the progs format (%d)", l.Registers, maxOperand)
	}

	if l.Globals > maxDescriptor+1 || l.Fields > maxDescriptor+1 {
		return errors.Errorf("descriptor limits may not exceed %d entries", maxDescriptor+1)
	}

	return nil
}
