// Package provision implements the host bootstrap orchestrator.
//
// A run resolves a working login identity first (provisioning the deploy
// account when it does not exist yet), then drives the remaining phases
// in a fixed order: firewall hardening, reboot coordination, runtime
// installation, and git endpoint bootstrap. Every phase executes remote
// commands through the shared Runner under the single current identity;
// recovery after disruptive operations (user creation, reboot) goes
// through availability polling, the only retry point in the system.
//
// The orchestrator is single-threaded and single-host: one SSH session
// is open at a time, and each remote command blocks until it completes
// or the connect timeout elapses. Re-running a completed or partially
// completed run is safe; every remote command is chosen to be idempotent.
package provision
