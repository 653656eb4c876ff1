package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/corey/recall/internal/adapters/fswatch"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session",
	Long:  "Read-eval loop over the learned pairs. Reloads the store when pairs.json changes on disk. Exit with 'exit', 'quit', or Ctrl-D.",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	b, closeBrain, err := openBrain()
	if err != nil {
		return err
	}
	defer closeBrain()

	// Hot-reload on external writes: another invocation learning a pair,
	// or a hand edit of pairs.json.
	watcher, err := fswatch.New(b.StorePath(), func() {
		if err := b.Reload(); err != nil {
			slog.Warn("store reload failed", "err", err)
		}
	})
	if err != nil {
		slog.Warn("store watch unavailable", "err", err)
	} else {
		defer watcher.Stop()
	}

	fmt.Printf("%s⚡ recall chat%s │ %d pairs │ exit to leave\n", colorBold, colorReset, len(b.Pairs()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%syou>%s ", colorCyan, colorReset)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		resp, err := b.Respond(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("%srecall>%s %s\n", colorMagenta, colorReset, resp)
	}
}
