// Command dynemit reports how the running CPU is classified, checks every
// executable kernel variant and benchmarks the dispatched multiply.
//
// Usage:
//
//	dynemit info [-o text|json|yaml]
//	dynemit features
//	dynemit check
//	dynemit bench [--csv] [--auto-detect] [--force-level LEVEL]
package main

import (
	"os"

	"github.com/cwbudde/algo-dynemit/cmd/dynemit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
