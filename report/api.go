// Package report displays the messages of the compiler: errors, warnings and
// progress information.  All output goes through a global reporter whose log
// level decides what is shown.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileError reports an error at a line of a source file.
func ReportCompileError(file string, line int, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel >= LogLevelError {
		displayCompileMessage(file, line, msg, true)
	}
}

// ReportCompileWarning reports a warning at a line of a source file.
func ReportCompileWarning(file string, line int, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++
	if rep.logLevel >= LogLevelWarn {
		displayCompileMessage(file, line, msg, false)
	}
}

// ReportWarning reports a warning about the program as a whole.
func ReportWarning(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++
	if rep.logLevel >= LogLevelWarn {
		displayWarning(fmt.Sprintf(msg, args...))
	}
}

// ReportError reports an error.  Compile errors are displayed with their
// source location; all other errors are displayed with the given tag.
func ReportError(tag string, err error) {
	var ce *CompileError
	if errors.As(err, &ce) {
		ReportCompileError(ce.File, ce.Line, ce.Message)
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel >= LogLevelError {
		displayError(tag, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  It also
// automatically formats error messages as necessary.  Fatal errors are always
// displayed regardless of log level.
func ReportFatal(msg string, args ...interface{}) {
	rep.m.Lock()
	rep.errorCount++
	rep.m.Unlock()

	displayFatal(fmt.Sprintf(msg, args...))

	os.Exit(1)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is verbose.

// ReportCompileHeader reports the compiler version and source directory.
func ReportCompileHeader(srcDir string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(srcDir)
	}
}

// ReportInfo reports a progress message.
func ReportInfo(msg string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		fmt.Printf(msg+"\n", args...)
	}
}

// ReportStats reports a table of object table usage.
func ReportStats(title string, stats []Stat) {
	if rep.logLevel != LogLevelVerbose {
		return
	}

	rows := make([][]string, len(stats))
	for i, stat := range stats {
		rows[i] = stat.row()
	}

	displayStats(title, rows)
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished() {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(
			ShouldProceed(),
			ErrorCount(),
			WarningCount(),
			time.Since(rep.startTime).Seconds(),
		)
	}
}

// ReportListing displays a disassembly listing.  Listings are requested
// explicitly, so they are shown at every log level except silent.
func ReportListing(listing string) {
	if rep.logLevel > LogLevelSilent {
		fmt.Print(listing)
	}
}
