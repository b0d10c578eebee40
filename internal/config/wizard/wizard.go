package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Host
	Address string

	// Project
	ProjectName    string
	RuntimeVersion string
}

// Run runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runHostGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	return result, nil
}
