// Command golf runs the golf interpreter from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/golf-lang/golf/cmd/golf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
