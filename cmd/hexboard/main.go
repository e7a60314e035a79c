// Command hexboard prints board layouts, self-checks the adjacency tables
// and replays placement scripts against a fresh board.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
