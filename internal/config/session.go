package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Session is the per-run connection state threaded through every component
// of the provisioning pipeline. It is constructed once per run; the only
// field mutated afterwards is User, written exactly once by identity
// resolution (or once more when user provisioning escalates from the
// administrative fallback to the deploy account).
type Session struct {
	Address string
	Port    int

	// User is the current login identity. Empty until identity resolution.
	User string

	// OverrideUser, when non-empty, is adopted as-is without probing.
	OverrideUser string

	// Password authenticates every SSH session on this host.
	Password string

	// ConnectTimeout bounds the connect phase of each SSH session.
	ConnectTimeout time.Duration
}

// NewSession builds the run session from the loaded config and the
// environment supplied by the surrounding deployment workflow.
// The password must be present in the environment; it is never read
// from or written to the config file.
func NewSession(cfg *Config, timeouts *Timeouts) (*Session, error) {
	s := &Session{
		Address:        cfg.Host.Address,
		Port:           cfg.Host.Port,
		OverrideUser:   cfg.Host.User,
		ConnectTimeout: timeouts.Connect,
	}

	if addr := os.Getenv(EnvHostAddress); addr != "" {
		s.Address = addr
	}
	if user := os.Getenv(EnvUserOverride); user != "" {
		s.OverrideUser = user
	}

	s.Password = os.Getenv(EnvHostPassword)
	if s.Password == "" {
		return nil, fmt.Errorf("host password not set: export %s before running", EnvHostPassword)
	}

	if s.Address == "" {
		return nil, fmt.Errorf("host address not set: set host.address in %s or export %s", DefaultConfigFile, EnvHostAddress)
	}
	if s.Port == 0 {
		s.Port = DefaultSSHPort
	}

	return s, nil
}

// Addr returns the host:port dial address.
func (s *Session) Addr() string {
	return net.JoinHostPort(s.Address, strconv.Itoa(s.Port))
}
