package provision_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/shipway/internal/provision"
)

func TestTemplateRenderer_PostReceive(t *testing.T) {
	renderer := provision.NewTemplateRenderer()

	hook, err := renderer.Render("post-receive", map[string]string{
		"ProjectPath": "/home/deploy/myapp",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hook, "#!/bin/sh"))
	assert.Contains(t, hook, `PROJECT_DIR="/home/deploy/myapp"`)
	assert.Contains(t, hook, "git checkout -f main")
	assert.Contains(t, hook, "uv")
	assert.NotContains(t, hook, "{{", "all template actions should be expanded")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := provision.NewTemplateRenderer()

	_, err := renderer.Render("pre-receive", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pre-receive")
}
