package cmd

import (
	"strings"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/launcher"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/gemdeck/gemdeck/settings"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/gemdeck/gemdeck/wizard"
	"github.com/gemdeck/gemdeck/xviper"
	"github.com/spf13/cobra"
)

var (
	cleanLaunchFlag bool
	waitFlag        bool
	launchYesFlag   bool
)

var launchCmd = &cobra.Command{
	Use:   "launch [profile]",
	Short: "Launch the tool using a profile (the default profile when omitted).",
	Long: `Launch the external tool inside the workspace of the given profile.
The profile is matched by id first, then by name. Without an argument the
profile flagged as default is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := settings.Load()
		pretty.Guard(err == nil, 2, "Cannot read settings: %v", err)
		store, err := storage.Open()
		pretty.Guard(err == nil, 3, "Cannot open catalog: %v", err)

		profile := resolveProfile(store, args)

		if cleanLaunchFlag && !profile.LaunchConfig.CleanLaunch {
			confirmed, err := wizard.Confirm("Remove the existing workspace before launch?", launchYesFlag)
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
			profile.LaunchConfig.CleanLaunch = true
		}

		launched, err := launcher.New(store, config).Launch(profile)
		pretty.Guard(err == nil, 4, "Launch failed: %v", err)
		xviper.RecordLaunch(profile.Id)

		common.Stdout("%sLaunched %q (pid %d)%s\n", pretty.Green, profile.Name, launched.Pid, pretty.Reset)
		common.Stdout("%sWorkspace: %s%s\n", pretty.Grey, launched.Workspace, pretty.Reset)

		if waitFlag {
			if err := <-launched.Done; err != nil {
				pretty.Exit(5, "Tool exited with failure: %v", err)
			}
			pretty.Ok()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().BoolVarP(&cleanLaunchFlag, "clean", "c", false, "Remove the profile workspace before launching.")
	launchCmd.Flags().BoolVarP(&waitFlag, "wait", "w", false, "Wait for the tool to exit instead of detaching.")
	wizard.AddYesFlag(launchCmd, &launchYesFlag)
}

// resolveProfile picks the launch target: explicit id, explicit name
// (case-insensitive) or the catalog default. Misses are fatal here; this
// is a leaf command.
func resolveProfile(store *storage.Store, args []string) *storage.Profile {
	if len(args) == 0 {
		profile, err := store.DefaultProfile()
		pretty.Guard(err == nil, 3, "Cannot read profiles: %v", err)
		pretty.Guard(profile != nil, 3, "No default profile; give a profile name or mark one with the UI.")
		return profile
	}

	wanted := args[0]
	profile, err := store.LoadProfile(wanted)
	if err == nil {
		return profile
	}
	pretty.Guard(storage.IsNotFound(err), 3, "Cannot read profile %q: %v", wanted, err)

	profiles, _, err := store.ListProfiles()
	pretty.Guard(err == nil, 3, "Cannot read profiles: %v", err)
	for _, candidate := range profiles {
		if strings.EqualFold(candidate.Name, wanted) {
			return candidate
		}
	}
	pretty.Exit(3, "No profile with id or name %q", wanted)
	return nil
}
