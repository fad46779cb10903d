// Command unitexpr evaluates unit-aware expressions from the command
// line, matching the teacher's thin cmd/<tool>/main.go + cmd/<tool>/cmd
// package split.
package main

import (
	"fmt"
	"os"

	"github.com/unitexpr/unitexpr/cmd/unitexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
