package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerLines  = 1
	footerLines  = 1
	captionLines = 2
)

// renderMain renders the full UI: header, photo area, caption, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render("foxtrot")}

	if m.snapshot.Loading {
		parts = append(parts, m.spin.View()+styles.WarningText.Render("Fetching fox..."))
	} else if m.snapshot.ShowingDefault() {
		parts = append(parts, styles.MutedText.Render("bundled fox"))
	} else {
		parts = append(parts, styles.SuccessText.Render(fmt.Sprintf("Fox #%d", m.snapshot.Fetches)))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderBody renders the photo area plus the caption lines beneath it.
func (m Model) renderBody() string {
	styles := m.theme.Styles()

	_, artRows := m.artBounds()
	art := m.art
	if art == "" {
		art = styles.FaintText.Render(m.placeholderText())
	}
	photoArea := lipgloss.Place(m.width, artRows, lipgloss.Center, lipgloss.Center, art)

	urlLine := styles.Text.
		Width(m.width).
		Align(lipgloss.Center).
		Render(truncateMiddle(m.displayURL(), m.width-4))

	linkLine := ""
	if m.snapshot.Link != "" {
		linkLine = styles.FaintText.
			Width(m.width).
			Align(lipgloss.Center).
			Render(truncateMiddle(m.snapshot.Link, m.width-4))
	}

	return photoArea + "\n" + urlLine + "\n" + linkLine
}

// renderFooter renders the key hint bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	bindings := []struct{ key, desc string }{
		{m.keys.Refresh.Help().Key, m.keys.Refresh.Help().Desc},
		{m.keys.TogglePreview.Help().Key, m.keys.TogglePreview.Help().Desc},
		{m.keys.CycleTheme.Help().Key, m.keys.CycleTheme.Help().Desc},
		{m.keys.Help.Help().Key, m.keys.Help.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, styles.AccentText.Render(b.key)+" "+styles.MutedText.Render(b.desc))
	}

	return styles.Footer.Width(m.width).Render(strings.Join(parts, "   "))
}

// renderHelp renders the full-screen help overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	helpCommands := []struct{ key, desc string }{
		{"r / space", "Fetch a new fox"},
		{"p", "Toggle inline photo preview"},
		{"T", "Cycle color theme (" + strings.Join(ThemeNames(), ", ") + ")"},
		{"h / ?", "Toggle this help"},
		{"q / Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("foxtrot"))
	b.WriteString(styles.MutedText.Render("  random fox viewer"))
	b.WriteString("\n\n")
	for _, cmd := range helpCommands {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentText.Render(fmt.Sprintf("%-10s", cmd.key)),
			styles.Text.Render(cmd.desc)))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("  Fetch errors are logged, never shown; the previous fox stays on screen."))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// displayURL returns the text shown on the caption line.
func (m Model) displayURL() string {
	if m.snapshot.ShowingDefault() {
		return "bundled placeholder"
	}
	return m.snapshot.ImageURL
}

// placeholderText is shown in the photo area when no art is available.
func (m Model) placeholderText() string {
	if !m.previewOn {
		return "preview off (p to enable)"
	}
	return "no preview available"
}

// artBounds returns the cell budget for the photo area at the current
// terminal size.
func (m Model) artBounds() (cols, rows int) {
	cols = m.width - 4
	rows = m.height - headerLines - footerLines - captionLines - 2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
