package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/imamik/shipway/internal/config"
)

// Invocation describes a single remote command run.
// The zero value logs the command text and both output streams.
type Invocation struct {
	// Command is the shell text executed on the host.
	Command string

	// HideOutput suppresses logging of the captured streams. The streams
	// are still returned to the caller.
	HideOutput bool

	// SkipLogging suppresses all logging for this call, including the
	// command text. Used for credential-bearing commands.
	SkipLogging bool

	// Timeout overrides the session's connect timeout for this call.
	Timeout time.Duration
}

// Result holds the captured output of a remote command, trimmed.
// No exit status is modeled; callers infer success from the error
// taxonomy and from textual inspection of the streams.
type Result struct {
	Stdout string
	Stderr string
}

// Logger receives the executor's progress output.
type Logger interface {
	Printf(format string, v ...any)
}

// Client runs commands on the host described by the session. The session
// is shared by reference so an identity change made by the resolver is
// picked up by every subsequent call.
type Client struct {
	session *config.Session
	log     Logger

	// hostKeyCallback defaults to ssh.InsecureIgnoreHostKey.
	hostKeyCallback ssh.HostKeyCallback
}

// NewClient creates a client bound to the given run session.
func NewClient(session *config.Session, log Logger) (*Client, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if session.Address == "" {
		return nil, errors.New("session address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Client{
		session:         session,
		log:             log,
		hostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // fresh VM, no prior host key
	}, nil
}

// SetHostKeyCallback replaces the default host key policy.
func (c *Client) SetHostKeyCallback(cb ssh.HostKeyCallback) {
	c.hostKeyCallback = cb
}

// Run executes one command in a dedicated session and returns its trimmed
// output streams. The session is released on every exit path. Connect
// failures come back as UnreachableError or AuthFailedError; Run never
// retries.
func (c *Client) Run(ctx context.Context, inv Invocation) (Result, error) {
	if !inv.SkipLogging {
		c.log.Printf("Running server command over SSH...")
		c.log.Printf("  command: %s", inv.Command)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	timeout := inv.Timeout
	if timeout == 0 {
		timeout = c.session.ConnectTimeout
	}

	clientConfig := &ssh.ClientConfig{
		User: c.session.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(c.session.Password),
		},
		HostKeyCallback: c.hostKeyCallback,
		Timeout:         timeout,
	}

	addr := c.session.Addr()
	client, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return Result{}, classifyDialError(addr, c.session.User, err)
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return Result{}, &UnreachableError{Addr: addr, Err: fmt.Errorf("failed to create SSH session: %w", err)}
	}
	defer func() { _ = session.Close() }()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	// A non-zero exit or a connection torn down by the command itself
	// (reboot) still yields whatever output was captured; only transport
	// level failures are surfaced. Success is inferred by callers from
	// the streams, not from an exit code.
	if err := session.Run(inv.Command); err != nil {
		var exitErr *ssh.ExitError
		var missingErr *ssh.ExitMissingError
		if !errors.As(err, &exitErr) && !errors.As(err, &missingErr) {
			return Result{
					Stdout: strings.TrimSpace(stdout.String()),
					Stderr: strings.TrimSpace(stderr.String()),
				}, &UnreachableError{
					Addr: addr,
					Err:  fmt.Errorf("connection lost while running command: %w", err),
				}
		}
	}

	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if !inv.SkipLogging && !inv.HideOutput {
		if result.Stdout != "" {
			c.log.Printf("%s", result.Stdout)
		}
		if result.Stderr != "" {
			c.log.Printf("%s", result.Stderr)
		}
	}

	return result, nil
}
