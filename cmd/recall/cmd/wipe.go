package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear all learned data",
	Long:  "Deletes the persisted pair store and the trained model cache. Synonym overrides are kept.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	if !wipeForce {
		fmt.Printf("⚠ This will delete all learned pairs in %s. Continue? [y/N] ", dataDir())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	wiped := false
	for _, path := range []string{pairsPath(), cachePath()} {
		err := os.Remove(path)
		if err == nil {
			wiped = true
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}

	if !wiped {
		fmt.Println("⚡ no data to wipe")
		return nil
	}
	fmt.Println("⚡ learned data wiped")
	return nil
}
