// SPDX-License-Identifier: MIT

// Command optbst builds optimal binary search trees from key/weight files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/optbst/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
