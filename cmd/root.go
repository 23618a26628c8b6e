package cmd

import (
	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/spf13/cobra"
)

var (
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	colorlessFlag bool
	homeOption    string
)

var rootCmd = &cobra.Command{
	Use:     "gemdeck",
	Short:   "Catalog and launch deck for the Gemini CLI.",
	Long: `gemdeck manages a catalog of Gemini CLI extensions and launch
profiles, and starts the tool inside disposable per-profile workspaces.

Running gemdeck without a subcommand opens the interactive terminal UI.`,
	Version: common.Version,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Show debug messages during execution.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Show trace messages during execution (implies --debug).")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Do not show progress messages during execution.")
	rootCmd.PersistentFlags().BoolVarP(&colorlessFlag, "colorless", "", false, "Do not use colors in CLI output.")
	rootCmd.PersistentFlags().StringVarP(&homeOption, "home", "", "", "Override gemdeck data directory (default: $"+common.GEMDECK_HOME_VARIABLE+" or ~/.gemdeck).")
}

// initCommand resolves persistent flags before any subcommand runs. Kept
// in one place so every surface sees the same verbosity and home.
func initCommand() {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	if len(homeOption) > 0 {
		common.Product.ForceHome(homeOption)
	}
	pretty.Colorless = colorlessFlag
	pretty.Setup()
}

// Execute is the process entry point for the command surface.
func Execute() {
	cobra.OnInitialize(initCommand)
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
}
