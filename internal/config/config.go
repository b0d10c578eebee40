package config

import (
	"errors"
	"fmt"
	"net"
	"regexp"
)

// projectNameRegex validates project name format: 1-32 lowercase alphanumeric
// with hyphens or underscores, starting with a letter.
var projectNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// Config is the static configuration loaded from shipway.yaml.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Host    HostConfig    `yaml:"host"`
}

// ProjectConfig describes the application being prepared for deployment.
type ProjectConfig struct {
	// Name is used to derive every server-side path (project directory,
	// bare repository, deploy hook).
	Name string `yaml:"name"`

	// RuntimeVersion is the Python version uv installs on the host.
	RuntimeVersion string `yaml:"runtime_version" mapstructure:"runtime_version"`
}

// HostConfig describes how to reach the target host.
type HostConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`

	// User, when set, is an explicit identity override: shipway adopts it
	// without probing and never attempts to provision the deploy account.
	User string `yaml:"user"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Project.Name == "" {
		errs = append(errs, errors.New("project.name is required"))
	} else if !projectNameRegex.MatchString(c.Project.Name) {
		errs = append(errs, errors.New("project.name must be 1-32 lowercase alphanumeric characters, hyphens or underscores, starting with a letter"))
	}

	if c.Host.Address == "" {
		errs = append(errs, errors.New("host.address is required"))
	} else if net.ParseIP(c.Host.Address) == nil && !isHostname(c.Host.Address) {
		errs = append(errs, fmt.Errorf("host.address %q is not a valid IP address or hostname", c.Host.Address))
	}

	if c.Host.Port < 0 || c.Host.Port > 65535 {
		errs = append(errs, fmt.Errorf("host.port %d is out of range", c.Host.Port))
	}

	return errors.Join(errs...)
}

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)

func isHostname(s string) bool {
	return len(s) <= 253 && hostnameRegex.MatchString(s)
}
