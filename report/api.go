package report

import (
	"fmt"
	"os"
)

// ReportICE reports an internal error: a bug or an unexpected condition which
// is never supposed to happen.  These errors are always displayed regardless
// of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error and exits the program.  Fatal errors are
// expected errors which prevent any further progress: unreadable input
// files, invalid arguments, etc.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportStdError reports a non-fatal, standard Go error.  The reprPath is the
// path of the file the error concerns.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportWarning reports a warning about the file at reprPath.
func ReportWarning(reprPath string, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		displayWarning(reprPath, fmt.Sprintf(message, args...))
	}
}

// ReportInfo reports an informational message.  It is only displayed at the
// verbose log level.
func ReportInfo(tag string, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.isErr
}

// ShouldDisplay returns whether messages at the given level are displayed.
func ShouldDisplay(level int) bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.logLevel >= level
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` while processing the file
// at reprPath.  Panics carrying an error are reported as errors against the
// file.  Any other panic is an internal error.
// NB: This function must ALWAYS be deferred.
func CatchErrors(reprPath string) {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportStdError(reprPath, err)
		} else {
			ReportICE("%s: %v", reprPath, x)
		}
	}
}
