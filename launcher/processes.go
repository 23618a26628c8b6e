package launcher

import (
	"path/filepath"
	"strings"

	"github.com/gemdeck/gemdeck/common"
	ps "github.com/mitchellh/go-ps"
)

// ToolBinary is the bare executable name of the configured tool.
func (it *Launcher) ToolBinary() string {
	argv, err := it.toolCommandLine()
	if err != nil || len(argv) == 0 {
		return ""
	}
	return filepath.Base(argv[0])
}

// RunningTools counts live processes running the configured tool binary.
// Purely informational; failures degrade to zero.
func (it *Launcher) RunningTools() int {
	binary := it.ToolBinary()
	if len(binary) == 0 {
		return 0
	}
	processes, err := ps.Processes()
	if err != nil {
		common.Trace("process listing failed: %v", err)
		return 0
	}
	count := 0
	for _, process := range processes {
		name := process.Executable()
		if name == binary || strings.TrimSuffix(name, ".exe") == binary {
			count++
		}
	}
	return count
}
