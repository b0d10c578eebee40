package ssh

import (
	"errors"
	"fmt"
	"strings"
)

// UnreachableError reports that no SSH connection could be established
// within the connect timeout. This is the only failure kind availability
// polling treats as transient.
type UnreachableError struct {
	Addr string
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("host %s is unreachable: %v", e.Addr, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// AuthFailedError reports that the host rejected the identity/credential
// pair. Identity resolution uses this as a signal that the deploy account
// does not exist yet.
type AuthFailedError struct {
	Addr string
	User string
	Err  error
}

func (e *AuthFailedError) Error() string {
	return fmt.Sprintf("authentication failed for %s@%s: %v", e.User, e.Addr, e.Err)
}

func (e *AuthFailedError) Unwrap() error {
	return e.Err
}

// IsUnreachable reports whether err is an UnreachableError.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}

// IsAuthFailed reports whether err is an AuthFailedError.
func IsAuthFailed(err error) bool {
	var ae *AuthFailedError
	return errors.As(err, &ae)
}

// classifyDialError maps a raw dial/handshake error onto the executor's
// error taxonomy. x/crypto/ssh exposes client-side auth rejection only as
// handshake error text, so the string match is isolated here as the single
// point of change.
func classifyDialError(addr, user string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "unable to authenticate") || strings.Contains(msg, "no supported methods remain") {
		return &AuthFailedError{Addr: addr, User: user, Err: err}
	}
	return &UnreachableError{Addr: addr, Err: err}
}
