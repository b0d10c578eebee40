package wizard

import (
	"context"
	"errors"
	"net"
	"regexp"

	"github.com/charmbracelet/huh"
)

// projectNameRegex mirrors the config validation rule: 1-32 lowercase
// alphanumeric with hyphens or underscores, starting with a letter.
var projectNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// RuntimeVersionOptions are the Python versions offered by the wizard.
var RuntimeVersionOptions = []huh.Option[string]{
	huh.NewOption("3.13", "3.13"),
	huh.NewOption("3.12 (Recommended)", "3.12"),
	huh.NewOption("3.11", "3.11"),
}

// runHostGroup prompts for the host address.
func runHostGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Host Address").
				Description("IP address or hostname of the freshly provisioned server").
				Placeholder("203.0.113.10").
				Value(&result.Address).
				Validate(validateAddress),
		).Title("Host"),
	).RunWithContext(ctx)
}

// runProjectGroup prompts for project name and runtime version.
func runProjectGroup(ctx context.Context, result *Result) error {
	result.RuntimeVersion = "3.12" // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("1-32 lowercase alphanumeric characters, hyphens or underscores").
				Placeholder("my-app").
				Value(&result.ProjectName).
				Validate(validateProjectName),
			huh.NewSelect[string]().
				Title("Python Version").
				Description("Installed on the host with uv").
				Options(RuntimeVersionOptions...).
				Value(&result.RuntimeVersion),
		).Title("Project"),
	).RunWithContext(ctx)
}

func validateAddress(s string) error {
	if s == "" {
		return errors.New("host address is required")
	}
	if net.ParseIP(s) == nil && len(s) > 253 {
		return errors.New("host address must be an IP address or hostname")
	}
	return nil
}

func validateProjectName(s string) error {
	if s == "" {
		return errors.New("project name is required")
	}
	if !projectNameRegex.MatchString(s) {
		return errors.New("project name must be 1-32 lowercase alphanumeric characters, hyphens or underscores, starting with a letter")
	}
	return nil
}
