package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/corey/recall/internal/ports"
	"github.com/spf13/cobra"
)

var learnBatch string

var learnCmd = &cobra.Command{
	Use:   "learn <input> <output>",
	Short: "Learn an input/output pair",
	Long: `Adds one pair, or a JSON batch with --batch.

The output may be a plain reply or a JSON array of replies:
  recall learn "hi" "hello"
  recall learn "hi" '["hello","hey"]'
  recall learn --batch '[{"input":"bye","output":"goodbye"}]'
  recall learn --batch @pairs.json

Pairs whose normalized input already exists are merged, never replaced.`,
	RunE: runLearn,
}

func init() {
	learnCmd.Flags().StringVar(&learnBatch, "batch", "", "JSON array of pairs, or @file")
}

func runLearn(cmd *cobra.Command, args []string) error {
	if learnBatch != "" {
		if len(args) != 0 {
			return fmt.Errorf("--batch takes no positional arguments")
		}
		return runLearnBatch(learnBatch)
	}

	if len(args) != 2 {
		return fmt.Errorf("expected <input> <output>, got %d arguments", len(args))
	}

	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	if err := b.Learn(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("%s⚡ learned%s %q\n", colorBold, colorReset, args[0])
	return nil
}

// runLearnBatch parses the whole batch before any mutation: malformed
// syntax is a usage error and nothing is applied.
func runLearnBatch(batch string) error {
	raw := []byte(batch)
	if strings.HasPrefix(batch, "@") {
		data, err := os.ReadFile(batch[1:])
		if err != nil {
			return fmt.Errorf("read batch file: %w", err)
		}
		raw = data
	}

	var pairs []ports.Pair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return fmt.Errorf("malformed batch: %w", err)
	}

	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	if err := b.LearnBatch(pairs); err != nil {
		return err
	}
	fmt.Printf("%s⚡ learned%s %d pairs\n", colorBold, colorReset, len(pairs))
	return nil
}
