// Package report renders the observable results of an investigation as terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/myrjola/detectivequest/internal/accusation"
	"github.com/myrjola/detectivequest/internal/clueindex"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/mansion"
)

// Styles are applied to single lines only so that multi-line output is never padded.
type Styles struct {
	Title   lipgloss.Style
	Room    lipgloss.Style
	Clue    lipgloss.Style
	Suspect lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Valid   lipgloss.Style
	Invalid lipgloss.Style
}

// DefaultStyles uses the 16 basic ANSI colors so that the output follows the terminal theme.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Room:    lipgloss.NewStyle().Bold(true),
		Clue:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Suspect: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Valid:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Invalid: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// PlainStyles renders without any escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Room: plain, Clue: plain, Suspect: plain,
		Muted: plain, Error: plain, Valid: plain, Invalid: plain,
	}
}

type Renderer struct {
	styles Styles
}

// New creates a Renderer. Without color every style is plain.
func New(color bool) *Renderer {
	if color {
		return &Renderer{styles: DefaultStyles()}
	}
	return &Renderer{styles: PlainStyles()}
}

func (r *Renderer) Styles() Styles {
	return r.styles
}

// Title renders a casebook title and its introduction.
func (r *Renderer) Title(title, intro string) string {
	lines := []string{r.styles.Title.Render(title)}
	if intro != "" {
		lines = append(lines, intro)
	}
	return strings.Join(lines, "\n")
}

// Help lists the navigation commands.
func (r *Renderer) Help() string {
	return r.styles.Muted.Render("Commands: left (l), right (r), back (b), exit (x)")
}

// Visit describes entering a room and what was found there.
func (r *Renderer) Visit(v exploration.Visit) string {
	lines := []string{"Room: " + r.styles.Room.Render(v.Room)}
	switch v.Discovery {
	case exploration.NewClue:
		lines = append(lines, "You found a clue: "+r.styles.Clue.Render(v.Clue))
	case exploration.KnownClue:
		lines = append(lines, "Clue present: "+r.styles.Clue.Render(v.Clue)+r.styles.Muted.Render(" (already collected)"))
	case exploration.NoClue:
		lines = append(lines, r.styles.Muted.Render("No clue in this room."))
	}
	if v.HasSuspect {
		lines = append(lines, " -> points to "+r.styles.Suspect.Render(v.Suspect))
	}
	return strings.Join(lines, "\n")
}

// Outcome describes a successfully applied command.
func (r *Renderer) Outcome(o exploration.Outcome) string {
	if o.Ended {
		return r.styles.Muted.Render("Leaving the mansion.")
	}
	if o.Visit == nil {
		return ""
	}
	return r.Visit(*o.Visit)
}

// NavigationError describes why a token was rejected.
func (r *Renderer) NavigationError(err error) string {
	var msg string
	switch {
	case errors.Is(err, exploration.ErrAtRoot):
		msg = "You are at the entrance, there is nowhere to go back to."
	case errors.Is(err, exploration.ErrInvalidNavigation):
		msg = "There is no room that way."
	case errors.Is(err, exploration.ErrUnrecognizedToken):
		msg = "Unrecognized command."
	case errors.Is(err, exploration.ErrSessionEnded):
		msg = "The exploration is over."
	default:
		msg = err.Error()
	}
	return r.styles.Error.Render(msg)
}

// Clues lists the collected clues in ascending order.
func (r *Renderer) Clues(idx *clueindex.Index) string {
	if idx.Len() == 0 {
		return r.styles.Title.Render("Collected clues") + "\n" + r.styles.Muted.Render("No clues collected.")
	}
	lines := []string{r.styles.Title.Render(fmt.Sprintf("Collected clues (%d)", idx.Len()))}
	for clue := range idx.All() {
		lines = append(lines, " - "+r.styles.Clue.Render(clue))
	}
	return strings.Join(lines, "\n")
}

// Suspects lists every distinct suspect of the ledger.
func (r *Renderer) Suspects(l *ledger.Ledger) string {
	suspects := l.Suspects()
	if len(suspects) == 0 {
		return r.styles.Title.Render("Known suspects") + "\n" + r.styles.Muted.Render("No suspects on file.")
	}
	lines := []string{r.styles.Title.Render("Known suspects")}
	for _, s := range suspects {
		lines = append(lines, " - "+r.styles.Suspect.Render(s))
	}
	return strings.Join(lines, "\n")
}

// Ledger shows the non-empty buckets of l with their chains, head first.
func (r *Renderer) Ledger(l *ledger.Ledger) string {
	lines := []string{r.styles.Title.Render(fmt.Sprintf("Ledger (%d entries, %d buckets)", l.Len(), l.Buckets()))}
	for i := range l.Buckets() {
		chain := l.Chain(i)
		if len(chain) == 0 {
			continue
		}
		entries := make([]string, len(chain))
		for j, clue := range chain {
			suspect, _ := l.Lookup(clue)
			entries[j] = r.styles.Clue.Render(clue) + " = " + r.styles.Suspect.Render(suspect)
		}
		lines = append(lines, fmt.Sprintf("[%2d] %s", i, strings.Join(entries, " -> ")))
	}
	return strings.Join(lines, "\n")
}

// Verdict describes the outcome of an accusation.
func (r *Renderer) Verdict(v accusation.Verdict) string {
	lines := []string{
		"Accusation: " + r.styles.Suspect.Render(v.Suspect),
		fmt.Sprintf("%d of your clues point to them.", v.Count),
	}
	for _, clue := range v.Evidence {
		lines = append(lines, " - "+r.styles.Clue.Render(clue))
	}
	if v.Valid {
		lines = append(lines, "Result: "+r.styles.Valid.Render("ACCUSATION UPHELD. Case closed."))
	} else {
		lines = append(lines, "Result: "+r.styles.Invalid.Render("INSUFFICIENT EVIDENCE. Investigation inconclusive."))
	}
	return strings.Join(lines, "\n")
}

// MapTree draws the mansion as an ASCII tree with the exit direction of every room.
func (r *Renderer) MapTree(m *mansion.Map) string {
	var b strings.Builder
	root := m.Root()
	b.WriteString(r.roomLabel(root))
	r.drawChildren(&b, root, "")
	return b.String()
}

func (r *Renderer) drawChildren(b *strings.Builder, room *mansion.Room, prefix string) {
	type exit struct {
		label string
		room  *mansion.Room
	}
	var exits []exit
	if room.Left() != nil {
		exits = append(exits, exit{label: "L", room: room.Left()})
	}
	if room.Right() != nil {
		exits = append(exits, exit{label: "R", room: room.Right()})
	}
	for i, e := range exits {
		branch, indent := "├── ", "│   "
		if i == len(exits)-1 {
			branch, indent = "└── ", "    "
		}
		b.WriteString("\n" + prefix + branch + e.label + ": " + r.roomLabel(e.room))
		r.drawChildren(b, e.room, prefix+indent)
	}
}

func (r *Renderer) roomLabel(room *mansion.Room) string {
	label := r.styles.Room.Render(room.Name)
	if room.HasClue() {
		label += " " + r.styles.Muted.Render("[") + r.styles.Clue.Render(room.Clue) + r.styles.Muted.Render("]")
	}
	return label
}
