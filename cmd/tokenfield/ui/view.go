package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	container := m.styles.Container
	if m.field.Focused() {
		container = m.styles.ContainerFocused
	}
	box := container.
		Width(m.layout.width + 2*ContainerPaddingH).
		Render(strings.Join(m.contentLines(), "\n"))

	sections := []string{box, m.footer()}
	if m.showHelp {
		sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// contentLines renders the chip rows with the input trailing the last chip,
// or on its own line when the field sized it to full width.
func (m Model) contentLines() []string {
	selectedID := ""
	if tok, ok := m.selectedToken(); ok {
		selectedID = tok.ID
	}

	rows := m.layout.rows()
	lines := make([]string, 0, len(rows)+1)
	gap := strings.Repeat(" ", ChipGap)
	for _, row := range rows {
		chips := make([]string, 0, len(row))
		for _, p := range row {
			chips = append(chips, m.styles.RenderChip(p.tok, p.tok.ID == selectedID))
		}
		lines = append(lines, strings.Join(chips, gap))
	}

	input := m.input.View()
	if len(lines) == 0 || m.field.InputWidth().Full {
		return append(lines, input)
	}
	lines[len(lines)-1] += gap + input
	return lines
}

func (m Model) footer() string {
	valid := len(m.field.ValidContent())
	invalid := len(m.field.InvalidContent())

	parts := []string{m.styles.Valid.Render(fmt.Sprintf("%d valid", valid))}
	if invalid > 0 {
		parts = append(parts, m.styles.Invalid.Render(fmt.Sprintf("%d invalid", invalid)))
	}
	if m.status != "" {
		parts = append(parts, m.styles.Muted.Render(m.status))
	}
	return m.styles.Footer.Render(strings.Join(parts, m.styles.Muted.Render(" · ")))
}
