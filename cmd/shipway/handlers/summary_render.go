package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/provision"
)

var (
	summaryColorGreen = lipgloss.Color("#22c55e")
	summaryColorBlue  = lipgloss.Color("#3b82f6")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)
)

// renderSummary produces a lipgloss-styled bootstrap summary string.
func renderSummary(project string, session *config.Session, state *provision.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf("  shipway: %s", project)))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(summarySectionStyle.Render("  Host"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    address:   %s\n", session.Address))
	b.WriteString(fmt.Sprintf("    identity:  %s (%s)\n", session.User, state.IdentitySource))
	if state.UserProvisioned {
		b.WriteString(summaryGreenStyle.Render("    deploy account created"))
		b.WriteString("\n")
	}
	if state.Rebooted {
		b.WriteString(summaryGreenStyle.Render("    host rebooted for pending updates"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summarySectionStyle.Render("  Deployment"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    remote:    %s\n", state.RemoteURL))
	b.WriteString(summaryDimStyle.Render("    push with: git push deploy main"))
	b.WriteString("\n\n")

	return b.String()
}
