// Package config defines the shipway configuration model: the static
// project/host configuration loaded from shipway.yaml, the mutable
// per-run session (address, current login identity, credential), and
// the timeout budgets used by the provisioning pipeline.
package config
