// Command gridconv is a command-line interface for converting between
// latitude/longitude, British National Grid and UTM coordinates.
package main

import (
	"fmt"
	"os"

	"github.com/tzneal/gridconv/internal/cli"
)

func main() {
	if err := cli.NewRoot(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
