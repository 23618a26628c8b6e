package cmd

import (
	"strings"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/gemdeck/gemdeck/xviper"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog extensions and launch profiles.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := storage.Open()
		pretty.Guard(err == nil, 3, "Cannot open catalog: %v", err)

		divider := strings.Repeat("-", pretty.TerminalWidth())

		extensions, extensionFailures, err := store.ListExtensions()
		pretty.Guard(err == nil, 3, "Cannot list extensions: %v", err)
		pretty.Highlight("Extensions (%d)", len(extensions))
		for _, extension := range extensions {
			common.Stdout("  %s%-28s%s %-10s %s%s%s\n", pretty.White, extension.Name, pretty.Reset,
				extension.Version, pretty.Grey, extension.Description, pretty.Reset)
		}
		reportFailures(extensionFailures)

		common.Stdout("%s%s%s\n", pretty.Grey, divider, pretty.Reset)

		profiles, profileFailures, err := store.ListProfiles()
		pretty.Guard(err == nil, 3, "Cannot list profiles: %v", err)
		pretty.Highlight("Profiles (%d)", len(profiles))
		for _, profile := range profiles {
			marker := " "
			if profile.Metadata.IsDefault {
				marker = "*"
			}
			common.Stdout("  %s%s %-28s%s %2d extension(s) %4d launch(es)\n", pretty.White, marker,
				profile.Name, pretty.Reset, len(profile.ExtensionIds), xviper.LaunchCount(profile.Id))
		}
		reportFailures(profileFailures)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func reportFailures(failures []storage.Failure) {
	for _, failure := range failures {
		pretty.Warning("record %q is unreadable: %v", failure.Id, failure.Err)
	}
}
