package provision

import (
	"context"

	"github.com/imamik/shipway/internal/config"
)

// State holds the shared results of bootstrap phases. It is progressively
// populated as each phase completes and is passed to subsequent phases
// that need earlier results.
type State struct {
	// IdentitySource records how the current identity was chosen.
	IdentitySource IdentitySource

	// UserProvisioned is true when this run created the deploy account.
	UserProvisioned bool

	// Rebooted is true when this run coordinated a host reboot.
	Rebooted bool

	// RemoteURL is the push destination registered locally.
	RemoteURL string
}

// IdentitySource describes how the current login identity was resolved.
type IdentitySource string

const (
	// IdentityOverride means an explicit identity was supplied externally.
	IdentityOverride IdentitySource = "override"
	// IdentityProvisioned means the well-known deploy account is in use,
	// whether it already existed or was created during this run.
	IdentityProvisioned IdentitySource = "provisioned"
)

// Context wraps all dependencies and state needed by a bootstrap phase.
// It is constructed once per run and passed by reference; the session's
// identity field is the only value mutated mid-run, and only by identity
// resolution and user provisioning.
type Context struct {
	context.Context
	Config   *config.Config
	Session  *config.Session
	Timeouts *config.Timeouts
	State    *State
	Runner   Runner
	Observer Observer
	Hooks    HookRenderer
	Git      LocalGit
}

// NewContext creates a new bootstrap context with a console observer.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	session *config.Session,
	runner Runner,
	hooks HookRenderer,
	git LocalGit,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Session:  session,
		Timeouts: config.LoadTimeouts(),
		State:    &State{},
		Runner:   runner,
		Observer: NewConsoleObserver(),
		Hooks:    hooks,
		Git:      git,
	}
}
