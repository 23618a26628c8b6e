package pretty

import (
	"fmt"
	"os"

	"github.com/gemdeck/gemdeck/common"
	"golang.org/x/term"
)

// Exit flushes logs and terminates the process with the given exit code
// after printing the message.
func Exit(code int, format string, rest ...interface{}) {
	message := fmt.Sprintf(format, rest...)
	if code == 0 {
		common.Stdout("%s%s%s\n", Green, message, Reset)
	} else {
		common.Stdout("%s%s%s\n", Red, message, Reset)
	}
	common.WaitLogs()
	os.Exit(code)
}

// Guard is an exit-on-failure assertion for unrecoverable CLI conditions.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	common.Stdout("%sOK.%s\n", Green, Reset)
	return nil
}

func Warning(format string, rest ...interface{}) {
	common.Stdout("%sWarning: %s%s\n", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Stdout("%s%s%s\n", Cyan, fmt.Sprintf(format, rest...), Reset)
}

// TerminalWidth reports the stdout width, falling back to 80 columns when
// detection fails (pipes, dumb terminals).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
