package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvision(t *testing.T) {
	cmd := Provision()

	require.NotNil(t, cmd)
	assert.Equal(t, "provision", cmd.Use)
	assert.Equal(t, "Bootstrap the remote host for deployment", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Provision command should have RunE function")
}

func TestProvision_ConfigFlag(t *testing.T) {
	cmd := Provision()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}
