package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

const icePostlude = "This error was not supposed to happen: please open an issue with the input that caused it."

// displayICE displays an internal error message.
func displayICE(message string) {
	ErrorStyleBG.Print("internal error")
	ErrorColorFG.Println(" " + message)
	fmt.Print(icePostlude, "\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("fatal error")
	ErrorColorFG.Println(" " + message)
	fmt.Println()
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	ErrorStyleBG.Print("error")
	fmt.Print(" ", reprPath, ": ")
	ErrorColorFG.Println(err.Error())
}

// displayWarning displays a warning message.
func displayWarning(reprPath, message string) {
	WarnStyleBG.Print("warning")
	fmt.Print(" ", reprPath, ": ")
	WarnColorFG.Println(message)
}

// displayInfo displays an informational message prefixed by tag.
func displayInfo(tag, message string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + message)
}

// DisplaySuccess displays a closing success message.  It is only displayed at
// the verbose log level.
func DisplaySuccess(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		SuccessStyleBG.Print("done")
		SuccessColorFG.Println(" " + fmt.Sprintf(message, args...))
	}
}
