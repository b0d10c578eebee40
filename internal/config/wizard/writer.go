package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/shipway/internal/config"
)

// WriteConfig writes the wizard result to a YAML file with a descriptive
// header.
func WriteConfig(result *Result, outputPath string) error {
	cfg := BuildConfig(result)

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// BuildConfig converts wizard answers into a Config with defaults applied.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Project: config.ProjectConfig{
			Name:           result.ProjectName,
			RuntimeVersion: result.RuntimeVersion,
		},
		Host: config.HostConfig{
			Address: result.Address,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# shipway configuration
# Generated by 'shipway init' on %s
#
# The SSH password is never stored here: export SHIPWAY_HOST_PASSWORD
# before running 'shipway provision'.
#
# File: %s
`, time.Now().Format("2006-01-02"), outputPath)
}
