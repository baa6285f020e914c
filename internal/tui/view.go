package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	styles := m.renderer.Styles()

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	header := styles.Title.Render(m.title) + styles.Muted.Render("  "+m.status())

	// Without a known window size the whole log is shown.
	visible := m.messages
	if m.height > 0 {
		inputHeight := 3
		maxMessages := max(m.height-inputHeight-3, 1) //nolint:mnd // header and panel border
		if len(visible) > maxMessages {
			visible = visible[len(visible)-maxMessages:]
		}
	}
	log := panel
	input := panel
	if m.width > 0 {
		log = log.Width(m.width - 2)     //nolint:mnd // border
		input = input.Width(m.width - 2) //nolint:mnd // border
	}

	var view strings.Builder
	view.WriteString(header + "\n")
	view.WriteString(log.Render(strings.Join(visible, "\n")) + "\n")
	if m.phase != Done {
		view.WriteString(input.Render(m.input.View()))
	}
	return view.String()
}

func (m Model) status() string {
	switch m.phase {
	case Explore:
		return strings.Join(m.session.Path(), " / ")
	case Accuse:
		return "accusation"
	case Done:
		return "case closed"
	default:
		return ""
	}
}
