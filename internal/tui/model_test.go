package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/report"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/myrjola/detectivequest/internal/tui"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (tui.Model, *exploration.Session) {
	t.Helper()
	ctx := context.Background()
	cb, err := casebook.Reference()
	require.NoError(t, err)
	logger := testhelpers.NewLogger(io.Discard)
	m, l, err := casebook.Build(ctx, cb, logger)
	require.NoError(t, err)
	s := exploration.New(m, l, logger)
	return tui.New(ctx, s, report.New(false), cb.Title, cb.Intro), s
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m, cmd
}

func typeLine(line string) []tea.Msg {
	return []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)},
		tea.KeyMsg{Type: tea.KeyEnter},
	}
}

func TestModel_StartsAtEntrance(t *testing.T) {
	m, s := newModel(t)
	require.Equal(t, tui.Explore, m.Phase())
	require.Equal(t, "Hall", s.Current().Name)
	require.Contains(t, m.Messages(), "Room: Hall")
	require.Contains(t, m.Messages(), "You found a clue: pegadas molhadas")
	require.Contains(t, m.View(), "Detective Quest")
}

func TestModel_TypedCommands(t *testing.T) {
	m, s := newModel(t)

	m, _ = send(t, m, typeLine("left")...)
	require.Equal(t, "SalaA", s.Current().Name)
	require.Contains(t, m.Messages(), "> left")

	m, _ = send(t, m, typeLine("jump")...)
	require.Equal(t, "SalaA", s.Current().Name)
	require.Equal(t, "Unrecognized command.", m.Messages()[len(m.Messages())-1])

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Unrecognized command.", m.Messages()[len(m.Messages())-1], "empty line is ignored")
}

func TestModel_ArrowKeys(t *testing.T) {
	m, s := newModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "You are at the entrance, there is nowhere to go back to.", m.Messages()[len(m.Messages())-1])

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "SalaE", s.Current().Name)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "SalaE", s.Current().Name)
	require.Equal(t, "There is no room that way.", m.Messages()[len(m.Messages())-1])

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "SalaB", s.Current().Name)

	// Arrows edit the input while something is typed.
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "SalaB", s.Current().Name)
}

func TestModel_FullGame(t *testing.T) {
	m, _ := newModel(t)

	var msgs []tea.Msg
	for _, token := range []string{"left", "left", "back", "right", "back", "back", "right", "right"} {
		msgs = append(msgs, typeLine(token)...)
	}
	m, _ = send(t, m, msgs...)
	require.Equal(t, tui.Explore, m.Phase())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, tui.Accuse, m.Phase())
	log := strings.Join(m.Messages(), "\n")
	require.Contains(t, log, "Collected clues (5)")
	require.Contains(t, log, " - Sra. Rosa")

	m, cmd := send(t, m, typeLine("Sra. Rosa")...)
	require.Nil(t, cmd)
	require.Equal(t, tui.Done, m.Phase())
	verdict, ok := m.Verdict()
	require.True(t, ok)
	require.Equal(t, 2, verdict.Count)
	require.True(t, verdict.Valid)
	require.NotContains(t, m.View(), "suspect name", "input is hidden once the case is closed")

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_AccuseWithoutEnoughEvidence(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, typeLine("exit")...)
	require.Equal(t, tui.Accuse, m.Phase())

	m, _ = send(t, m, typeLine("Sr. Verde")...)
	verdict, ok := m.Verdict()
	require.True(t, ok)
	require.Equal(t, 1, verdict.Count)
	require.False(t, verdict.Valid)
	require.Contains(t, strings.Join(m.Messages(), "\n"), "INSUFFICIENT EVIDENCE")
}

func TestModel_EscapeWithoutAccusing(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, tui.Done, m.Phase())
	_, ok := m.Verdict()
	require.False(t, ok)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 8})
	view := m.View()
	require.Contains(t, view, "Hall")
	require.NotContains(t, view, "Explore a mansao", "old lines scroll out of a small window")
}
