// calc runs the nutrition engine from the command line without a server or
// database.
// Usage: go run ./cmd/calc evaluate --height 175 --weight 70 --goal lose
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
