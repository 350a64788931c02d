// Command flexlayout resolves flexbox layout trees described in TOML or
// JSON fixture files and prints the resulting geometry.
//
// Usage:
//
//	flexlayout layout [flags] file...   Lay out fixtures and print boxes
//	flexlayout check file...            Validate fixtures without layout
//	flexlayout version                  Print version information
//
// Examples:
//
//	flexlayout layout panel.toml
//	flexlayout layout --format json a.toml b.json
//	flexlayout layout --cull --viewport 80x24 screen.toml
//	FLEXLAYOUT_LOG_LEVEL=debug flexlayout layout panel.toml
package main

import (
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := newApp()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.logError(stderr, err)
		return 1
	}
	return 0
}
