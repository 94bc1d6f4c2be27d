package report

import (
	"strings"
	"sync"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user.  The reporter respects the set log level and is
// synchronized: its methods can be safely called from multiple goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been detected.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// LogLevelNames lists the names of the log levels in order.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts a log level name into its log level.
func ParseLogLevel(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range LogLevelNames {
		if levelName == name {
			return level, true
		}
	}

	return 0, false
}

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// InitReporter sets the log level of the global reporter and clears its error
// state.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.isErr = false
}
