package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Connect     time.Duration // Timeout for the connect phase of each SSH session
	PollDelay   time.Duration // Delay between availability probe attempts
	PollTimeout time.Duration // Total budget for availability polling
	RebootPause time.Duration // Fixed pause between issuing reboot and polling
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - SHIPWAY_TIMEOUT_CONNECT (default: 10s)
//   - SHIPWAY_POLL_DELAY (default: 10s)
//   - SHIPWAY_POLL_TIMEOUT (default: 5m)
//   - SHIPWAY_REBOOT_PAUSE (default: 5s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Connect:     parseDuration("SHIPWAY_TIMEOUT_CONNECT", 10*time.Second),
		PollDelay:   parseDuration("SHIPWAY_POLL_DELAY", 10*time.Second),
		PollTimeout: parseDuration("SHIPWAY_POLL_TIMEOUT", 5*time.Minute),
		RebootPause: parseDuration("SHIPWAY_REBOOT_PAUSE", 5*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
