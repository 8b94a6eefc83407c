// Command fsx runs filesystem operations through the portable facade.
//
// Usage:
//
//	fsx find [dir] [-r] [-p pattern]
//	fsx stat <path>
//	fsx mkdir <path> [-p]
//	fsx rm <path> [-r]
//	fsx mv <path> <new-path>
//	fsx cat <path>
//	fsx put <path> < data
//
// Relative paths resolve against --root (default: the working directory).
// With --json, failures are printed as JSON objects carrying the error code.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
