// Package wizard provides an interactive prompt flow for creating a
// shipway configuration file. It uses charmbracelet/huh for text inputs
// and selects, and writes the resulting shipway.yaml.
package wizard
