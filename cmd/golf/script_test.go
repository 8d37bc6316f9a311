package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/golf-lang/golf/cmd/golf/cmd"
)

// TestMain registers the golf binary as an in-process command so
// testscript scripts can `exec golf ...` without a real build step.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"golf": runGolf,
	}))
}

func runGolf() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// TestScripts drives the golf CLI end-to-end through testdata/script/*.txtar:
// flag handling, exit codes, and file-based I/O.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "../../testdata/script",
	})
}
