package config

const (
	// DeployUser is the well-known non-root account shipway provisions and
	// uses for all host setup after identity resolution.
	DeployUser = "deploy"

	// AdminUser is the administrative fallback identity used only while the
	// deploy account does not exist yet.
	AdminUser = "root"

	// DefaultConfigFile is the config filename auto-detected in the current
	// directory when no --config flag is given.
	DefaultConfigFile = "shipway.yaml"

	// DefaultRuntimeVersion is the Python version installed on the host when
	// the config does not pin one.
	DefaultRuntimeVersion = "3.12"

	// DefaultSSHPort is used when the host config does not specify a port.
	DefaultSSHPort = 22
)

// Environment variables consumed by the surrounding deployment workflow.
const (
	// EnvHostAddress overrides the host address from the config file.
	EnvHostAddress = "SHIPWAY_HOST_ADDR"

	// EnvHostPassword supplies the SSH password. Never written to disk.
	EnvHostPassword = "SHIPWAY_HOST_PASSWORD"

	// EnvUserOverride forces a specific login identity, skipping identity
	// resolution entirely.
	EnvUserOverride = "SHIPWAY_USER"
)
