package common

import (
	"os"
	"strings"
	"time"
)

const (
	GEMDECK_HOME_VARIABLE      = `GEMDECK_HOME`
	GEMDECK_LOG_LEVEL_VARIABLE = `GEMDECK_LOG_LEVEL`
	GENERIC_LOG_LEVEL_VARIABLE = `LOG_LEVEL`
	GEMDECK_NAME               = `gemdeck`
)

var (
	// When is the process start instant, usable as a stable "now" for naming.
	When = time.Now().Unix()

	// Product resolves the data directory layout for this process.
	Product = GemdeckMode()

	LogLinenumbers bool
	LogHides       []string

	debugFlag  bool
	traceFlag  bool
	silentFlag bool
)

func init() {
	applyLogLevel(LogLevel())
}

// LogLevel reads the observability level from the environment. The
// product-specific variable wins over the generic one.
func LogLevel() string {
	level := os.Getenv(GEMDECK_LOG_LEVEL_VARIABLE)
	if len(level) == 0 {
		level = os.Getenv(GENERIC_LOG_LEVEL_VARIABLE)
	}
	return strings.ToLower(strings.TrimSpace(level))
}

func applyLogLevel(level string) {
	switch level {
	case "trace":
		DefineVerbosity(false, true, true)
	case "debug":
		DefineVerbosity(false, true, false)
	case "silent", "none", "off":
		DefineVerbosity(true, false, false)
	}
}

// DefineVerbosity sets the effective logging flags. Trace implies debug,
// and either of them cancels silence.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent && !debug && !trace
	debugFlag = debug || trace
	traceFlag = trace
}

func DebugFlag() bool {
	return debugFlag
}

func TraceFlag() bool {
	return traceFlag
}

func Silent() bool {
	return silentFlag
}
