package report

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLogLevelFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"silent", LogLevelSilent},
		{"error", LogLevelError},
		{"warn", LogLevelWarn},
		{"verbose", LogLevelVerbose},
		{"loud", LogLevelVerbose},
	}

	for _, test := range tests {
		if got := LogLevelFromName(test.name); got != test.want {
			t.Errorf("LogLevelFromName(%q) = %d; want %d", test.name, got, test.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	err := Raise("defs.hc", 12, "unknown type `%s`", "int")

	if want := "defs.hc(12) : unknown type `int`"; err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}

	wrapped := errors.Wrap(err, "compiling defs.hc")

	var ce *CompileError
	if !errors.As(wrapped, &ce) || ce.Line != 12 {
		t.Error("compile error lost through wrapping")
	}
}

func TestCounting(t *testing.T) {
	InitReporter(LogLevelSilent)

	ReportCompileWarning("a.hc", 1, "unused")
	ReportWarning("unreferenced function '%s'", "f")

	if !ShouldProceed() || WarningCount() != 2 {
		t.Errorf("after warnings: proceed %v, %d warnings", ShouldProceed(), WarningCount())
	}

	ReportError("Error", Raise("a.hc", 2, "bad"))
	ReportError("Error", errors.New("disk full"))

	if ShouldProceed() || ErrorCount() != 2 {
		t.Errorf("after errors: proceed %v, %d errors", ShouldProceed(), ErrorCount())
	}
}

func TestStatRow(t *testing.T) {
	row := Stat{Name: "statements", Used: 10, Capacity: 65536, Bytes: 80}.row()
	want := []string{"statements", "10", "65536", "80"}

	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row = %q; want %q", row, want)
			break
		}
	}

	if row := (Stat{Name: "entity fields", Used: 3}).row(); row[2] != "" || row[3] != "" {
		t.Errorf("row = %q; want blank capacity and bytes", row)
	}
}
