package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/shipway/internal/config/wizard"
)

// defaultConfigTemplate is written by 'shipway init --defaults'.
const defaultConfigTemplate = `# shipway configuration
#
# The SSH password is never stored here: export SHIPWAY_HOST_PASSWORD
# before running 'shipway provision'.

project:
  name: my-app
  runtime_version: "3.12"

host:
  address: 203.0.113.10
  port: 22
`

// Init creates a configuration file, interactively unless defaults are
// requested.
func Init(ctx context.Context, outputPath string, useDefaults bool) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or choose another --output path", outputPath)
	}

	if useDefaults {
		if err := os.WriteFile(outputPath, []byte(defaultConfigTemplate), 0600); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s. Edit it, then run 'shipway provision'.\n", outputPath)
		return nil
	}

	result, err := wizard.Run(ctx)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	if err := wizard.WriteConfig(result, outputPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s. Export SHIPWAY_HOST_PASSWORD and run 'shipway provision'.\n", outputPath)
	return nil
}
