package launcher

import (
	"fmt"
	"os/exec"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/journal"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/google/shlex"
)

// Launched is the handle for a started tool. Done delivers exactly one
// value after the child exited and any workspace cleanup finished; the
// session loop never blocks on it.
type Launched struct {
	ProfileId string
	Pid       int
	Workspace string
	Done      <-chan error
}

// toolCommandLine splits the configured tool invocation into argv,
// appending the arguments from the profile's launch.
func (it *Launcher) toolCommandLine() ([]string, error) {
	argv, err := shlex.Split(it.config.Tool.Command)
	if err != nil {
		return nil, fmt.Errorf("tool command %q: %w", it.config.Tool.Command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("tool command is empty")
	}
	return argv, nil
}

// Launch builds the workspace, installs extensions, assembles the process
// environment and starts the external tool detached. A failed launch
// never touches catalog state.
func (it *Launcher) Launch(profile *storage.Profile) (*Launched, error) {
	if profile.LaunchConfig.CleanLaunch {
		if err := it.DiscardWorkspace(profile); err != nil {
			return nil, err
		}
	}
	workspace, err := it.SetupWorkspace(profile)
	if err != nil {
		return nil, err
	}
	installed, failures, err := it.InstallExtensions(profile, workspace)
	if err != nil {
		return nil, err
	}
	for _, failure := range failures {
		common.Log("Warning: %v", failure)
	}
	common.Debug("installed %d/%d extensions for profile %q", len(installed), len(profile.ExtensionIds), profile.Id)

	environment := PrepareEnvironment(profile)
	environment[ExtensionRootVariable] = ExtensionRoot(workspace)

	workdir, err := ResolveWorkingDirectory(profile)
	if err != nil {
		return nil, err
	}
	argv, err := it.toolCommandLine()
	if err != nil {
		return nil, err
	}

	command := exec.Command(argv[0], argv[1:]...)
	command.Dir = workdir
	command.Env = mergedEnviron(environment)
	detachProcess(command)

	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("cannot start %q: %w", argv[0], err)
	}
	common.Log("Launched %q (pid %d) for profile %q in %q", argv[0], command.Process.Pid, profile.Id, workdir)
	journal.Post("launch", profile.Id, "pid %d, %d extension(s) installed", command.Process.Pid, len(installed))

	return &Launched{
		ProfileId: profile.Id,
		Pid:       command.Process.Pid,
		Workspace: workspace,
		Done:      it.watch(command, profile, workspace),
	}, nil
}
