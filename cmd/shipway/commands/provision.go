package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Provision returns the command for bootstrapping the remote host.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect shipway.yaml)
//
// Environment variables:
//
//	SHIPWAY_HOST_PASSWORD: SSH password for the host (required)
//	SHIPWAY_HOST_ADDR:     overrides host.address from the config file
//	SHIPWAY_USER:          forces a specific login identity
func Provision() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Bootstrap the remote host for deployment",
		Long: `Bootstrap the remote host for git-push deployment.

This command connects to the host over SSH and performs one-time setup:

  - Resolves the login identity, creating the non-root deploy
    account if it does not exist yet
  - Enables the firewall with SSH allowed
  - Reboots the host if a pending package update requires it
  - Installs uv and the pinned Python version
  - Creates a bare repository with a deploy hook and registers
    it as the local "deploy" remote

Every step is safe to repeat: re-running provision on a host that is
already set up converges without changes.

Examples:
  # Bootstrap using shipway.yaml in the current directory
  shipway provision

  # Bootstrap using a specific config file
  shipway provision -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: shipway.yaml)")

	return cmd
}
