package ui

import (
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// createLogo renders the pitch banner with figlet when it is installed and
// falls back to plain text.
func createLogo(theme Theme) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)

	cmd := exec.Command("figlet", "-f", "small", "pitch")
	output, err := cmd.Output()
	if err != nil || len(output) == 0 {
		return style.Render("PITCH")
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
