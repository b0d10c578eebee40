// Package handlers implements CLI command execution: wiring configuration,
// the SSH executor, and the bootstrap pipeline together, and rendering
// results for the terminal.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/shipway/internal/config"
	gitcli "github.com/imamik/shipway/internal/platform/git"
	sshx "github.com/imamik/shipway/internal/platform/ssh"
	"github.com/imamik/shipway/internal/provision"
)

// Provision runs the full host bootstrap pipeline.
func Provision(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	timeouts := config.LoadTimeouts()
	session, err := config.NewSession(cfg, timeouts)
	if err != nil {
		return err
	}

	observer := provision.NewConsoleObserver()

	client, err := sshx.NewClient(session, observer)
	if err != nil {
		return fmt.Errorf("failed to create SSH client: %w", err)
	}

	runCtx := provision.NewContext(
		ctx,
		cfg,
		session,
		client,
		provision.NewTemplateRenderer(),
		gitcli.NewCLI(""),
	)
	runCtx.Timeouts = timeouts
	runCtx.Observer = observer

	if err := provision.RunPhases(runCtx, provision.Pipeline()); err != nil {
		return err
	}

	fmt.Print(renderSummary(cfg.Project.Name, session, runCtx.State))
	return nil
}

// loadConfig loads the configuration, auto-detecting shipway.yaml in the
// current directory when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("no config file found: run 'shipway init' or pass --config")
		}
	}
	return config.LoadFile(path)
}
