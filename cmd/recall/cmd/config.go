package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the data directory, pair store path, model cache path, and synonym overrides.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	synStatus := fmt.Sprintf("%s✗ none%s", colorYellow, colorReset)
	if _, err := os.Stat(synonymsPath()); err == nil {
		synStatus = fmt.Sprintf("%s✓ loaded%s", colorGreen, colorReset)
	}

	storeStatus := fmt.Sprintf("%s✗ empty%s", colorYellow, colorReset)
	if _, err := os.Stat(pairsPath()); err == nil {
		storeStatus = fmt.Sprintf("%s✓ present%s", colorGreen, colorReset)
	}

	fmt.Printf("%s⚡ recall config%s\n", colorBold, colorReset)
	fmt.Printf("  Data dir:   %s\n", dataDir())
	fmt.Printf("  Pairs:      %s  %s\n", pairsPath(), storeStatus)
	fmt.Printf("  Model:      %s\n", cachePath())
	fmt.Printf("  Synonyms:   %s  %s\n", synonymsPath(), synStatus)
	return nil
}
