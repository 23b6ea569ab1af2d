package report

import (
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, warnings and other messages to
// the user while the compiler runs.  The reporter respects the set log level
// and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchronize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	errorCount   int
	warningCount int

	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevelNames are the names accepted for log levels on the command line.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// LogLevelFromName converts a log level name into a log level.  Unknown names
// select the verbose level.
func LogLevelFromName(name string) int {
	for i, levelName := range LogLevelNames {
		if name == levelName {
			return i
		}
	}

	return LogLevelVerbose
}

// rep is the global reporter instance.
var rep = newReporter(LogLevelVerbose)

func newReporter(logLevel int) *Reporter {
	return &Reporter{
		m:         &sync.Mutex{},
		logLevel:  logLevel,
		startTime: time.Now(),
	}
}

// InitReporter initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = newReporter(logLevel)
}

// ShouldProceed indicates whether or not any errors have been reported.
func ShouldProceed() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}

// WarningCount returns the number of warnings reported so far, including
// those not displayed because of the log level.
func WarningCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.warningCount
}
