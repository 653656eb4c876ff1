// recall is a learned question/answer matcher.
// Single binary, zero config — typo-tolerant lookup, incremental learning.
package main

import (
	"os"

	"github.com/corey/recall/cmd/recall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
