package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/myrjola/detectivequest/internal/accusation"
	"github.com/myrjola/detectivequest/internal/exploration"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(accusePrompt)-6, 10) //nolint:mnd // border, padding and cursor
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.phase {
		case Explore:
			return m.handleExploreKey(msg)
		case Accuse:
			return m.handleAccuseKey(msg)
		case Done:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleExploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Arrow keys navigate only while nothing is typed so that they can still move the cursor in the input.
	empty := m.input.Value() == ""
	switch {
	case msg.Type == tea.KeyEsc:
		return m.apply(exploration.Exit)
	case msg.Type == tea.KeyLeft && empty:
		return m.apply(exploration.Left)
	case msg.Type == tea.KeyRight && empty:
		return m.apply(exploration.Right)
	case msg.Type == tea.KeyUp && empty:
		return m.apply(exploration.Back)
	case msg.Type == tea.KeyEnter:
		token := m.input.Value()
		m.input.Reset()
		if token == "" {
			return m, nil
		}
		m.appendLines(explorePrompt + token)
		outcome, err := m.session.Step(m.ctx, token)
		return m.handleOutcome(outcome, err)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) apply(cmd exploration.Command) (tea.Model, tea.Cmd) {
	m.appendLines(explorePrompt + cmd.String())
	outcome, err := m.session.Apply(m.ctx, cmd)
	return m.handleOutcome(outcome, err)
}

func (m Model) handleOutcome(outcome exploration.Outcome, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.appendLines(m.renderer.NavigationError(err))
		return m, nil
	}
	m.appendLines(m.renderer.Outcome(outcome))
	if !outcome.Ended {
		return m, nil
	}

	m.phase = Accuse
	m.appendLines("")
	m.appendLines(m.renderer.Clues(m.session.Clues()))
	m.appendLines("")
	m.appendLines(m.renderer.Suspects(m.session.Ledger()))
	m.appendLines("")
	m.appendLines("Who do you accuse? Type the exact name.")
	m.input.Reset()
	m.input.Prompt = accusePrompt
	m.input.Placeholder = "suspect name"
	return m, nil
}

func (m Model) handleAccuseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // other keys go to the text input
	case tea.KeyEsc:
		m.phase = Done
		m.appendLines("No accusation made.")
		return m, tea.Quit
	case tea.KeyEnter:
		// The name is matched exactly, so it is not trimmed; an empty line is ignored.
		name := m.input.Value()
		if name == "" {
			return m, nil
		}
		verdict := accusation.Evaluate(m.session.Clues(), m.session.Ledger(), name)
		m.verdict = &verdict
		m.phase = Done
		m.input.Reset()
		m.input.Blur()
		m.appendLines(accusePrompt + name)
		m.appendLines(m.renderer.Verdict(verdict))
		m.appendLines("")
		m.appendLines("Press any key to leave.")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
