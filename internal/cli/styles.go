// Package cli provides the lipgloss styling helpers cmd/jbonsai prints
// its run summary with.
//
// Grounded on linuxmatters-jivetalking's internal/cli/styles.go.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#5F87FF")
	mutedColor   = lipgloss.Color("#888888")
	successColor = lipgloss.Color("#00AA00")
	errorColor   = lipgloss.Color("#A40000")
	textColor    = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)
	KeyStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	ValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	BoxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)

// PrintError returns message prefixed with a styled "Error:" label; it
// prints nothing itself, and cmd/jbonsai passes the result to log.Fatal.
func PrintError(message string) string {
	return fmt.Sprintf("%s %s", ErrorStyle.Render("Error:"), message)
}

// RunSummary renders a boxed post-synthesis summary.
func RunSummary(voicePaths []string, labelCount, sampleRate, sampleCount int, outPath string) string {
	var b strings.Builder
	b.WriteString(SuccessStyle.Render("Synthesis complete"))
	b.WriteString("\n\n")
	b.WriteString(KeyStyle.Render("Voices:      "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", len(voicePaths))))
	b.WriteString("\n")
	b.WriteString(KeyStyle.Render("Labels:      "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", labelCount)))
	b.WriteString("\n")
	b.WriteString(KeyStyle.Render("Sample rate: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d Hz", sampleRate)))
	b.WriteString("\n")
	b.WriteString(KeyStyle.Render("Samples:     "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", sampleCount)))
	if outPath != "" {
		b.WriteString("\n")
		b.WriteString(KeyStyle.Render("Output:      "))
		b.WriteString(ValueStyle.Render(outPath))
	}
	return BoxStyle.Render(b.String())
}
