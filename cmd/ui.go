package cmd

import (
	"github.com/gemdeck/gemdeck/interactive"
	"github.com/gemdeck/gemdeck/launcher"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/gemdeck/gemdeck/settings"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "deck"},
	Short:   "Open the interactive terminal UI (the default command).",
	Long: `Open the interactive terminal user interface.

Navigation:
  1/2        Switch between extensions and profiles
  j/k        Move selection
  Enter      Edit selected entity
  r          Launch selected profile
  n/e/d      New, edit, delete
  /          Search
  ?          Help
  q          Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractive()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runInteractive() {
	pretty.Guard(pretty.Interactive, 1, "The UI requires an interactive terminal (TTY)")

	config, err := settings.Load()
	pretty.Guard(err == nil, 2, "Cannot read settings: %v", err)

	store, err := storage.Open()
	pretty.Guard(err == nil, 3, "Cannot open catalog: %v", err)

	err = interactive.Run(interactive.Deps{
		Store:    store,
		Launcher: launcher.New(store, config),
		Config:   config,
	})
	pretty.Guard(err == nil, 4, "UI error: %v", err)
}
