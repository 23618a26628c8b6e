// Package wizard holds the interactive prompts used by the command line
// surface outside the full screen UI.
package wizard

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pretty"
	"github.com/spf13/cobra"
)

const newline = '\n'

var (
	// ErrConfirmationRequired signals that a prompt was needed but stdin
	// is not a terminal and no --yes flag was given.
	ErrConfirmationRequired = errors.New("confirmation required: use --yes flag in non-interactive mode")
)

type validator func(string) bool

func memberValidation(members []string, erratic string) validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

func ask(question, defaults string, accept validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		source := bufio.NewReader(os.Stdin)
		reply, err := source.ReadString(newline)
		common.Stdout("\n")
		if err != nil {
			return "", err
		}
		reply = strings.TrimSpace(reply)
		if reply == "" {
			reply = defaults
		}
		if !accept(reply) {
			continue
		}
		return reply, nil
	}
}

// Confirm asks a yes/no question and defaults to no. A true force answers
// yes without prompting; without a terminal and without force the caller
// gets ErrConfirmationRequired instead of a hung prompt.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}

	accept := memberValidation([]string{"y", "Y", "n", "N"}, "Please answer 'y' or 'n'.")
	response, err := ask(question, "n", accept)
	if err != nil {
		return false, err
	}
	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}

// AddYesFlag attaches the conventional --yes/-y flag for skipping prompts.
func AddYesFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "yes", "y", false, "Skip confirmation prompt")
}
