// Package main provides the CLI entrypoint for viewbinding-generator.
//
// viewbinding-generator scans Go packages for struct fields marked with a
// bindview tag or directive and writes one <owner>_viewbinding.go companion
// per owning type:
//   - gen writes the companion files
//   - check renders them and reports files that are missing or stale
//   - config prints the effective configuration
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
