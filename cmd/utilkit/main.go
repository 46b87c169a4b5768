// Command utilkit runs the utilkit CLI.
package main

import (
	"os"

	"github.com/custodia-labs/utilkit/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
