// Package git wraps the local git binary for the one operation shipway
// needs on the developer's machine: registering the host as a push
// destination.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLI invokes the git binary found on PATH, operating on the repository
// in dir (the current directory when dir is empty).
type CLI struct {
	dir string
}

// NewCLI creates a CLI bound to the repository at dir.
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir}
}

// EnsureRemote registers url as the named remote, updating the URL when
// the remote already exists so re-runs converge on the same destination.
func (g *CLI) EnsureRemote(ctx context.Context, name, url string) error {
	out, err := g.run(ctx, "remote", "add", name, url)
	if err == nil {
		return nil
	}
	if strings.Contains(out, "already exists") {
		if _, err := g.run(ctx, "remote", "set-url", name, url); err != nil {
			return fmt.Errorf("failed to update remote %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("failed to add remote %s: %w", name, err)
}

func (g *CLI) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if g.dir != "" {
		cmd.Dir = g.dir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
