package launcher

import (
	"os/exec"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/journal"
	"github.com/gemdeck/gemdeck/storage"
)

// watch owns the child handle in a background goroutine. When the child
// is observed to have exited it performs the configured workspace
// cleanup, then signals completion. It never mutates catalog state.
func (it *Launcher) watch(command *exec.Cmd, profile *storage.Profile, workspace string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := command.Wait()
		if err != nil {
			common.Debug("tool for profile %q exited: %v", profile.Id, err)
			journal.Post("exit", profile.Id, "failure: %v", err)
		} else {
			journal.Post("exit", profile.Id, "clean exit")
		}
		if profile.LaunchConfig.CleanupOnExit {
			if cleanupErr := cleanupWorkspace(profile, workspace); cleanupErr != nil {
				common.Error("workspace cleanup", cleanupErr)
				if err == nil {
					err = cleanupErr
				}
			}
		}
		done <- err
	}()
	return done
}
