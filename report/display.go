package report

import (
	"fmt"
	"hcc/common"
	"strings"

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
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayError displays a standard Go error.
func displayError(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// displayCompileMessage displays a compile error or warning.
func displayCompileMessage(file string, line int, msg string, isError bool) {
	if isError {
		ErrorColorFG.Println(formatCompileMessage(file, line, "", msg))
	} else {
		WarnColorFG.Println(formatCompileMessage(file, line, "warning", msg))
	}
}

// displayWarning displays a warning that is not tied to a source line.
func displayWarning(msg string) {
	WarnStyleBG.Print("Warning")
	WarnColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler version and the source directory.
func displayCompileHeader(srcDir string) {
	fmt.Print("hcc ")
	InfoColorFG.Print("v" + common.HccVersion)
	fmt.Print(" -- source: ")
	InfoColorFG.Println(srcDir)
}

// displayStats renders a usage table.
func displayStats(title string, rows [][]string) {
	fmt.Println()
	InfoColorFG.Println(title)

	data := pterm.TableData{{"", "used", "capacity", "bytes"}}
	data = append(data, rows...)

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		for _, row := range rows {
			fmt.Println(strings.Join(row, "  "))
		}
	}
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, errorCount, warningCount int, seconds float64) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" warnings")
	case 1:
		WarnColorFG.Print(1)
		fmt.Print(" warning")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Print(" warnings")
	}

	fmt.Printf(") in %.3fs\n", seconds)
}
