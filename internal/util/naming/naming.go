// Package naming derives the deterministic server-side paths shipway
// creates and references: the project directory, the bare repository,
// its post-receive hook, the sudoers drop-in, and the git remote URL.
//
// Every path is a pure function of the login identity and the project
// name, so re-running the orchestrator always targets the same files.
package naming

import "fmt"

// HomeDir returns the home directory for a login identity.
func HomeDir(user string) string {
	if user == "root" {
		return "/root"
	}
	return fmt.Sprintf("/home/%s", user)
}

// ProjectDir is the checkout directory the deploy hook populates.
func ProjectDir(user, project string) string {
	return fmt.Sprintf("%s/%s", HomeDir(user), project)
}

// RepoDir is the bare repository that receives pushes.
func RepoDir(user, project string) string {
	return fmt.Sprintf("%s/%s.git", HomeDir(user), project)
}

// HookPath is the post-receive hook inside the bare repository.
func HookPath(user, project string) string {
	return fmt.Sprintf("%s/hooks/post-receive", RepoDir(user, project))
}

// SudoersFile is the drop-in holding the deploy account's NOPASSWD allow-list.
func SudoersFile(user string) string {
	return fmt.Sprintf("/etc/sudoers.d/%s", user)
}

// RemoteURL is the scp-style push destination registered locally.
func RemoteURL(user, address, project string) string {
	return fmt.Sprintf("%s@%s:%s", user, address, RepoDir(user, project))
}
