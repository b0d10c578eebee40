package provision

import "fmt"

// VerificationError reports that the deploy account was created but the
// new identity never authenticated within the polling budget. This is
// fatal: repeated failure here indicates a configuration defect on the
// host, not transient unavailability.
type VerificationError struct {
	User string
	Addr string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("provisioned user %q was created but could not log in to %s; check the host's SSH and PAM configuration", e.User, e.Addr)
}

// RebootTimeoutError reports that the host did not come back within the
// polling budget after a coordinated reboot. Fatal.
type RebootTimeoutError struct {
	Addr string
}

func (e *RebootTimeoutError) Error() string {
	return fmt.Sprintf("cannot reach %s after reboot; the host may still be booting, re-run once it responds to SSH", e.Addr)
}
