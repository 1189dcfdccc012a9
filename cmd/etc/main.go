// Command etc computes the Effort-To-Compress of symbolic sequences.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "etc:", err)
		os.Exit(1)
	}
}
