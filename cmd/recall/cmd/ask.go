package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <text...>",
	Short: "Resolve free text against the learned pairs",
	Long:  "Finds the best-matching learned pair (typo- and paraphrase-tolerant) or falls back to the trained generator.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	resp, err := b.Respond(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(resp)
	return nil
}
