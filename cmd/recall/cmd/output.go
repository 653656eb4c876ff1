package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/recall/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatPairs formats the pair collection for terminal display.
//
//	⚡ 3 pairs
//	  how are you  →  fine, thanks │ doing great
func formatPairs(pairs []*ports.Pair) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d pairs%s\n", colorBold, len(pairs), colorReset))
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("  %s%s%s  →  %s%s%s\n",
			colorCyan, p.Input, colorReset,
			colorGray, strings.Join(p.Outputs, " │ "), colorReset))
	}
	return sb.String()
}

// formatVocab formats vocabulary stats: size plus a leading sample.
func formatVocab(tokens []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d tokens%s\n", colorBold, len(tokens), colorReset))
	sample := tokens
	if len(sample) > 20 {
		sample = sample[:20]
	}
	for _, tok := range sample {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n", colorGreen, tok, colorReset))
	}
	if len(tokens) > len(sample) {
		sb.WriteString(fmt.Sprintf("  %s… %d more%s\n", colorGray, len(tokens)-len(sample), colorReset))
	}
	return sb.String()
}
