package cmd

import (
	"time"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/journal"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/spf13/cobra"
)

var historyTailOption int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded launch and exit events.",
	Run: func(cmd *cobra.Command, args []string) {
		events, err := journal.Events()
		pretty.Guard(err == nil, 3, "Cannot read event journal: %v", err)
		if len(events) == 0 {
			pretty.Highlight("No events recorded yet.")
			return
		}
		if historyTailOption > 0 && len(events) > historyTailOption {
			events = events[len(events)-historyTailOption:]
		}
		for _, event := range events {
			when := time.Unix(event.When, 0).Format("2006-01-02 15:04:05")
			common.Stdout("%s%s%s  %s%-8s%s %-36s %s%s%s\n",
				pretty.Grey, when, pretty.Reset,
				pretty.White, event.Event, pretty.Reset,
				event.Identity,
				pretty.Grey, event.Detail, pretty.Reset)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyTailOption, "tail", "t", 0, "Show only the last N events (0 shows all).")
}
