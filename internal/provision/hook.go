package provision

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplateRenderer renders the embedded deploy hook templates. It is the
// default HookRenderer; the surrounding workflow may supply its own.
type TemplateRenderer struct{}

// NewTemplateRenderer creates a renderer over the embedded templates.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

// Render parses the named template and executes it with the given
// context values.
func (r *TemplateRenderer) Render(name string, data map[string]string) (string, error) {
	content, err := templatesFS.ReadFile(fmt.Sprintf("templates/%s.tmpl", name))
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.String(), nil
}
