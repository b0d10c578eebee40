// Package ssh provides the remote executor: a password-authenticated SSH
// client that runs a single command per session on the target host.
//
// Each call dials, authenticates, runs the command, captures and trims
// both output streams, and closes the session on every exit path. The
// client never retries; connect failures are classified into
// [UnreachableError] and [AuthFailedError] so callers can tell a host
// that is down apart from an account that does not exist.
//
// Security: Host key verification is disabled by default, matching the
// fresh-VM use case where no prior host key exists. Configure
// HostKeyCallback for persistent servers.
package ssh
