// Command algokit runs the algokit containers, sorting algorithms and dense
// matrix operations from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "algokit: %v\n", err)
		os.Exit(1)
	}
}
