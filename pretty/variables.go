package pretty

import (
	"os"

	"github.com/gemdeck/gemdeck/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

// Setup probes the terminal and enables colors and interactive prompts
// accordingly. Interactive mode requires stdin, stdout and stderr to all
// be terminals so prompts behave safely with piped streams.
func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	if os.Getenv("TERM") == "" || os.Getenv("TERM") == "dumb" {
		Colorless = true
	}

	Interactive = stdin && stdout && stderr
	visual := stdout && !Colorless && !Disabled

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, visual)

	if visual {
		White = csi("97m")
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
}

func csi(value string) string {
	return "\033[" + value
}
