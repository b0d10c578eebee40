package config

import (
	"testing"
	"time"
)

func testTimeouts() *Timeouts {
	return &Timeouts{
		Connect:     10 * time.Second,
		PollDelay:   10 * time.Second,
		PollTimeout: 5 * time.Minute,
		RebootPause: 5 * time.Second,
	}
}

func TestNewSession(t *testing.T) {
	t.Setenv(EnvHostPassword, "secret")
	t.Setenv(EnvHostAddress, "")
	t.Setenv(EnvUserOverride, "")

	session, err := NewSession(validConfig(), testTimeouts())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if session.Address != "203.0.113.10" {
		t.Errorf("expected address from config, got %q", session.Address)
	}
	if session.Password != "secret" {
		t.Errorf("expected password from env, got %q", session.Password)
	}
	if session.User != "" {
		t.Errorf("identity must be unresolved at session creation, got %q", session.User)
	}
	if session.Addr() != "203.0.113.10:22" {
		t.Errorf("unexpected dial address %q", session.Addr())
	}
}

func TestNewSession_EnvOverrides(t *testing.T) {
	t.Setenv(EnvHostPassword, "secret")
	t.Setenv(EnvHostAddress, "198.51.100.7")
	t.Setenv(EnvUserOverride, "ops")

	session, err := NewSession(validConfig(), testTimeouts())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if session.Address != "198.51.100.7" {
		t.Errorf("expected env address to win, got %q", session.Address)
	}
	if session.OverrideUser != "ops" {
		t.Errorf("expected override user %q, got %q", "ops", session.OverrideUser)
	}
}

func TestNewSession_MissingPassword(t *testing.T) {
	t.Setenv(EnvHostPassword, "")

	if _, err := NewSession(validConfig(), testTimeouts()); err == nil {
		t.Error("expected error when password env is unset")
	}
}
