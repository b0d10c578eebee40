package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/shipway/cmd/shipway/handlers"
)

// Init returns the command for creating a project configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "shipway.yaml")
//	--defaults:   Write a default config without prompting
func Init() *cobra.Command {
	var (
		outputPath  string
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a project configuration",
		Long: `Interactively create a shipway configuration file.

This command asks for the host address, the project name used to derive
every server-side path, and the Python version to install, then writes
shipway.yaml. Use --defaults to skip the prompts and write a template
for manual editing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, useDefaults)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "shipway.yaml", "Path to output file")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Write a default config without prompting")

	return cmd
}
