// Package main is the entry point for the shipway CLI.
//
// shipway prepares a freshly provisioned Linux host to receive and run a
// web application deployed by git push: it negotiates a login identity,
// provisions a non-root deploy account, hardens the firewall, coordinates
// a pending reboot, installs the Python runtime, and wires up a bare
// repository with a deploy hook.
//
// For detailed usage information, run:
//
//	shipway --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/shipway/cmd/shipway/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
