package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show vocabulary stats",
	Long:  "Shows the derived token vocabulary (the generator's feature space) in first-seen order.",
	RunE:  runVocab,
}

func runVocab(cmd *cobra.Command, args []string) error {
	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	fmt.Print(formatVocab(b.Vocab().Tokens()))
	return nil
}
