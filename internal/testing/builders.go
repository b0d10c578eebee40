package testing

import (
	"context"
	"time"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/provision"
)

// ContextBuilder provides a fluent interface for constructing a bootstrap
// context wired to fakes, with timeouts shrunk so polling loops finish in
// milliseconds.
type ContextBuilder struct {
	cfg      config.Config
	session  config.Session
	timeouts config.Timeouts
	runner   provision.Runner
	observer provision.Observer
	renderer provision.HookRenderer
	git      provision.LocalGit
}

// NewContextBuilder creates a builder with test defaults.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{
		cfg: config.Config{
			Project: config.ProjectConfig{Name: "testapp", RuntimeVersion: "3.12"},
			Host:    config.HostConfig{Address: "192.0.2.10", Port: 22},
		},
		session: config.Session{
			Address:        "192.0.2.10",
			Port:           22,
			Password:       "test-password",
			ConnectTimeout: time.Second,
		},
		timeouts: config.Timeouts{
			Connect:     time.Second,
			PollDelay:   time.Millisecond,
			PollTimeout: 10 * time.Millisecond,
			RebootPause: time.Millisecond,
		},
		runner:   NewScriptedRunner(),
		observer: &RecordingObserver{},
		renderer: &FakeRenderer{},
		git:      &FakeLocalGit{},
	}
}

// WithRunner sets the fake executor.
func (b *ContextBuilder) WithRunner(r provision.Runner) *ContextBuilder {
	b.runner = r
	return b
}

// WithObserver sets the observer.
func (b *ContextBuilder) WithObserver(o provision.Observer) *ContextBuilder {
	b.observer = o
	return b
}

// WithOverrideUser sets an explicit identity override on the session.
func (b *ContextBuilder) WithOverrideUser(user string) *ContextBuilder {
	b.session.OverrideUser = user
	return b
}

// WithUser sets the session's current identity, for tests that start
// after identity resolution.
func (b *ContextBuilder) WithUser(user string) *ContextBuilder {
	b.session.User = user
	return b
}

// WithProject sets the project name.
func (b *ContextBuilder) WithProject(name string) *ContextBuilder {
	b.cfg.Project.Name = name
	return b
}

// WithPollBudget sets the availability polling delay and timeout.
func (b *ContextBuilder) WithPollBudget(delay, timeout time.Duration) *ContextBuilder {
	b.timeouts.PollDelay = delay
	b.timeouts.PollTimeout = timeout
	return b
}

// WithRenderer sets the hook renderer.
func (b *ContextBuilder) WithRenderer(r provision.HookRenderer) *ContextBuilder {
	b.renderer = r
	return b
}

// WithLocalGit sets the local git collaborator.
func (b *ContextBuilder) WithLocalGit(g provision.LocalGit) *ContextBuilder {
	b.git = g
	return b
}

// Build assembles the provision.Context.
func (b *ContextBuilder) Build() *provision.Context {
	cfg := b.cfg
	session := b.session
	timeouts := b.timeouts
	return &provision.Context{
		Context:  context.Background(),
		Config:   &cfg,
		Session:  &session,
		Timeouts: &timeouts,
		State:    &provision.State{},
		Runner:   b.runner,
		Observer: b.observer,
		Hooks:    b.renderer,
		Git:      b.git,
	}
}
