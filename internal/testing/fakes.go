package testing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
	"github.com/imamik/shipway/internal/provision"
)

// Rule matches remote commands by substring and supplies their outcome.
// When Errs is non-empty, successive matching calls consume one error
// each (nil entries mean success); after the list is exhausted the rule
// keeps returning its last entry. This makes "fail three times, then
// succeed" scenarios one line to script.
type Rule struct {
	Match  string
	Result sshx.Result
	Errs   []error

	calls int
}

// ScriptedRunner is a fake remote executor. Commands are matched against
// rules in order; unmatched commands succeed with empty output.
type ScriptedRunner struct {
	mu    sync.Mutex
	rules []*Rule

	// Invocations records every call in order.
	Invocations []sshx.Invocation
}

// NewScriptedRunner creates a runner with the given rules.
func NewScriptedRunner(rules ...*Rule) *ScriptedRunner {
	return &ScriptedRunner{rules: rules}
}

// Run implements provision.Runner.
func (r *ScriptedRunner) Run(_ context.Context, inv sshx.Invocation) (sshx.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Invocations = append(r.Invocations, inv)

	for _, rule := range r.rules {
		if strings.Contains(inv.Command, rule.Match) {
			var err error
			if len(rule.Errs) > 0 {
				idx := rule.calls
				if idx >= len(rule.Errs) {
					idx = len(rule.Errs) - 1
				}
				err = rule.Errs[idx]
			}
			rule.calls++
			return rule.Result, err
		}
	}

	return sshx.Result{}, nil
}

// Commands returns the command text of every invocation, in order.
func (r *ScriptedRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmds := make([]string, len(r.Invocations))
	for i, inv := range r.Invocations {
		cmds[i] = inv.Command
	}
	return cmds
}

// CallsMatching counts invocations whose command contains substr.
func (r *ScriptedRunner) CallsMatching(substr string) int {
	n := 0
	for _, cmd := range r.Commands() {
		if strings.Contains(cmd, substr) {
			n++
		}
	}
	return n
}

// RecordingObserver captures log lines and events for assertions on what
// was (and was not) logged.
type RecordingObserver struct {
	mu     sync.Mutex
	Lines  []string
	Events []provision.Event
}

// Printf implements provision.Logger.
func (o *RecordingObserver) Printf(format string, v ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Lines = append(o.Lines, fmt.Sprintf(format, v...))
}

// Event implements provision.Observer.
func (o *RecordingObserver) Event(e provision.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Events = append(o.Events, e)
}

// WithFields implements provision.Observer.
func (o *RecordingObserver) WithFields(_ map[string]string) provision.Observer {
	return o
}

// Logged returns all captured log lines joined, for substring assertions.
func (o *RecordingObserver) Logged() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.Lines, "\n")
}

// HasEvent reports whether an event of the given type was observed.
func (o *RecordingObserver) HasEvent(eventType provision.EventType) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, e := range o.Events {
		if e.Type == eventType {
			return true
		}
	}
	return false
}

// FakeRenderer returns a fixed body for any template, recording the
// context it was given.
type FakeRenderer struct {
	Body string
	Last map[string]string
}

// Render implements provision.HookRenderer.
func (r *FakeRenderer) Render(_ string, data map[string]string) (string, error) {
	r.Last = data
	if r.Body == "" {
		return "#!/bin/sh\n", nil
	}
	return r.Body, nil
}

// FakeLocalGit records registered remotes.
type FakeLocalGit struct {
	Remotes map[string]string
	Err     error
}

// EnsureRemote implements provision.LocalGit.
func (g *FakeLocalGit) EnsureRemote(_ context.Context, name, url string) error {
	if g.Err != nil {
		return g.Err
	}
	if g.Remotes == nil {
		g.Remotes = make(map[string]string)
	}
	g.Remotes[name] = url
	return nil
}
