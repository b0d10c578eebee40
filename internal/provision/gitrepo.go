package provision

import (
	"fmt"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
	"github.com/imamik/shipway/internal/util/naming"
)

const gitPhaseName = "git-endpoint"

// hookTemplateName is the embedded template rendered into the bare
// repository's hooks directory.
const hookTemplateName = "post-receive"

// remoteName is the push destination registered in the local repository.
const remoteName = "deploy"

// hookHeredocDelimiter guards the hook transfer; the quoted form keeps
// the remote shell from expanding anything inside the script body.
const hookHeredocDelimiter = "SHIPWAY_HOOK"

// GitEndpointPhase creates the server-side git endpoint: project
// directory, bare repository, deploy hook, and the local push remote.
type GitEndpointPhase struct{}

func (p *GitEndpointPhase) Name() string { return gitPhaseName }

func (p *GitEndpointPhase) Provision(ctx *Context) error {
	user := ctx.Session.User
	project := ctx.Config.Project.Name

	projectDir := naming.ProjectDir(user, project)
	repoDir := naming.RepoDir(user, project)
	hookPath := naming.HookPath(user, project)

	ctx.Observer.Printf("Creating project directory and bare repository...")
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("mkdir -p %s", projectDir),
	}); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("git init --bare %s", repoDir),
	}); err != nil {
		return fmt.Errorf("failed to initialize bare repository: %w", err)
	}

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: "git config --global init.defaultBranch main",
	}); err != nil {
		return fmt.Errorf("failed to set default branch name: %w", err)
	}

	ctx.Observer.Printf("Installing deploy hook...")
	hook, err := ctx.Hooks.Render(hookTemplateName, map[string]string{
		"ProjectPath": projectDir,
	})
	if err != nil {
		return fmt.Errorf("failed to render deploy hook: %w", err)
	}

	writeHook := fmt.Sprintf("cat > %s <<'%s'\n%s\n%s",
		hookPath, hookHeredocDelimiter, hook, hookHeredocDelimiter)
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command:    writeHook,
		HideOutput: true,
	}); err != nil {
		return fmt.Errorf("failed to write deploy hook: %w", err)
	}

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("chmod +x %s", hookPath),
	}); err != nil {
		return fmt.Errorf("failed to mark deploy hook executable: %w", err)
	}

	url := naming.RemoteURL(user, ctx.Session.Address, project)
	ctx.Observer.Printf("Registering push destination %s...", url)
	if err := ctx.Git.EnsureRemote(ctx, remoteName, url); err != nil {
		return fmt.Errorf("failed to register push destination: %w", err)
	}

	ctx.State.RemoteURL = url
	ctx.Observer.Event(Event{
		Type:    EventEndpointReady,
		Phase:   gitPhaseName,
		Message: fmt.Sprintf("push destination %q registered", url),
	})

	return nil
}
