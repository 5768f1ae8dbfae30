// Command pageflip pages through ordered collections and renders
// compact, elided page bars.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/pageflip/internal/cli"
	"github.com/rshade/pageflip/internal/tui"
	"github.com/rshade/pageflip/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failures to an exit code.
// Separated from main for testability.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		mode := tui.DetectOutputMode(false, os.Stderr)
		fmt.Fprintln(os.Stderr, tui.RenderError(err, mode))
		return 1
	}
	return 0
}
