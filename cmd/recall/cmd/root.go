package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/recall/internal/adapters/boltcache"
	"github.com/corey/recall/internal/adapters/jsonstore"
	"github.com/corey/recall/internal/adapters/mathexpr"
	"github.com/corey/recall/internal/adapters/neural"
	"github.com/corey/recall/internal/domain/brain"
	"github.com/corey/recall/internal/domain/text"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recall",
	Short: "recall — learned question/answer matcher",
	Long:  "Typo-tolerant lookup over learned input/output pairs, with a trained fallback generator.",
}

// dataDir returns the recall data directory: $RECALL_HOME, or ~/.recall.
func dataDir() string {
	if dir := os.Getenv("RECALL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return filepath.Join(home, ".recall")
}

func pairsPath() string    { return filepath.Join(dataDir(), "pairs.json") }
func cachePath() string    { return filepath.Join(dataDir(), "model.db") }
func synonymsPath() string { return filepath.Join(dataDir(), "synonyms.yaml") }

// openBrain wires the full session: JSON pair store, bbolt weights cache,
// neural fallback generator, arithmetic evaluator, and the synonym table
// (built-in defaults plus an optional synonyms.yaml in the data dir).
// The returned closer releases the cache database.
func openBrain() (*brain.Brain, func(), error) {
	syn := text.NewSynonyms()
	if _, err := os.Stat(synonymsPath()); err == nil {
		if err := syn.LoadYAML(synonymsPath()); err != nil {
			return nil, nil, err
		}
	}

	if err := os.MkdirAll(dataDir(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	cache, err := boltcache.Open(cachePath())
	if err != nil {
		return nil, nil, err
	}

	b, err := brain.New(jsonstore.NewStore(pairsPath()), syn,
		brain.WithCache(cache),
		brain.WithGenerator(neural.New()),
		brain.WithEvaluator(mathexpr.New()),
	)
	if err != nil {
		cache.Close()
		return nil, nil, err
	}
	return b, func() { cache.Close() }, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(pairsCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wipeCmd)
}
