package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List learned pairs",
	RunE:  runPairs,
}

func runPairs(cmd *cobra.Command, args []string) error {
	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	fmt.Print(formatPairs(b.Pairs()))
	return nil
}
