// Package tui is the interactive terminal front end: a bubbletea program that drives an exploration session and the
// accusation that follows it.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/myrjola/detectivequest/internal/accusation"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/report"
)

// Phase is the stage of the game the model is in.
type Phase int

const (
	Explore Phase = iota
	Accuse
	Done
)

func (p Phase) String() string {
	switch p {
	case Explore:
		return "explore"
	case Accuse:
		return "accuse"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

const (
	explorePrompt = "> "
	accusePrompt  = "accuse> "
)

type Model struct {
	// ctx carries the logging attributes of the command that started the program into the session.
	ctx      context.Context
	session  *exploration.Session
	renderer *report.Renderer
	title    string

	input    textinput.Model
	messages []string
	phase    Phase
	verdict  *accusation.Verdict
	width    int
	height   int
}

// New creates a model for a session that has not been started yet. Starting the session is the model's job so that
// the entrance hall shows up in the message log.
func New(ctx context.Context, session *exploration.Session, renderer *report.Renderer, title, intro string) Model {
	ti := textinput.New()
	ti.Prompt = explorePrompt
	ti.Placeholder = "left, right, back or exit"
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		ctx:      ctx,
		session:  session,
		renderer: renderer,
		title:    title,
		input:    ti,
		phase:    Explore,
	}
	m.appendLines(renderer.Title(title, intro))
	m.appendLines(renderer.Help())
	m.appendLines("")
	m.appendLines(renderer.Visit(session.Start(ctx)))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Phase reports the current stage of the game.
func (m Model) Phase() Phase {
	return m.phase
}

// Messages returns the message log, one line per entry.
func (m Model) Messages() []string {
	return m.messages
}

// Verdict returns the accusation result once the player has accused someone.
func (m Model) Verdict() (accusation.Verdict, bool) {
	if m.verdict == nil {
		return accusation.Verdict{}, false
	}
	return *m.verdict, true
}

func (m *Model) appendLines(text string) {
	m.messages = append(m.messages, strings.Split(text, "\n")...)
}
