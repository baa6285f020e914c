// Package exploration runs an investigation over a mansion map.
//
// A Session keeps track of the room the detective stands in and the way back to the entrance. Every room entered is
// searched: a clue not seen before is added to the session's clue index, and the suspect the ledger associates with the
// clue is reported. Navigation mistakes are returned as errors and never change the session state.
package exploration

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myrjola/detectivequest/internal/clueindex"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
)

var (
	ErrInvalidNavigation = errors.NewSentinel("no room in that direction")
	ErrAtRoot            = fmt.Errorf("already at the entrance: %w", ErrInvalidNavigation)
	ErrUnrecognizedToken = errors.NewSentinel("unrecognized command")
	ErrSessionEnded      = errors.NewSentinel("exploration has ended")
)

// Discovery tells what searching a room turned up.
type Discovery int

const (
	// NoClue means the room holds no clue.
	NoClue Discovery = iota
	// NewClue means the clue was collected on this visit.
	NewClue
	// KnownClue means the clue had been collected before.
	KnownClue
)

func (d Discovery) String() string {
	switch d {
	case NoClue:
		return "none"
	case NewClue:
		return "new"
	case KnownClue:
		return "known"
	default:
		return "unknown"
	}
}

// Visit is the result of entering a room.
type Visit struct {
	Room      string
	Clue      string
	Discovery Discovery
	// Suspect is the suspect the ledger associates with Clue; HasSuspect is false for unattributed clues.
	Suspect    string
	HasSuspect bool
}

// Outcome is the result of a successfully applied command. Visit is nil when the session ended.
type Outcome struct {
	Command Command
	Visit   *Visit
	Ended   bool
}

// Event pairs an input token with what it caused.
type Event struct {
	Token   string
	Outcome Outcome
	Err     error
}

type Session struct {
	id      uuid.UUID
	tree    *mansion.Map
	ledger  *ledger.Ledger
	clues   *clueindex.Index
	current *mansion.Room
	path    []*mansion.Room
	ended   bool
	logger  *slog.Logger
}

// New creates a session standing at the entrance of m. The ledger is shared with the caller and only read.
func New(m *mansion.Map, l *ledger.Ledger, logger *slog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:      id,
		tree:    m,
		ledger:  l,
		clues:   &clueindex.Index{},
		current: m.Root(),
		logger:  logger.With("source", "exploration", "session", id.String()),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the room the detective is in.
func (s *Session) Current() *mansion.Room {
	return s.current
}

// Depth returns how many rooms lie between the entrance and the current room.
func (s *Session) Depth() int {
	return len(s.path)
}

// Path returns the room names from the entrance to the current room.
func (s *Session) Path() []string {
	names := make([]string, 0, len(s.path)+1)
	for _, r := range s.path {
		names = append(names, r.Name)
	}
	return append(names, s.current.Name)
}

// Clues returns the clues collected so far.
func (s *Session) Clues() *clueindex.Index {
	return s.clues
}

func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

func (s *Session) Map() *mansion.Map {
	return s.tree
}

func (s *Session) Ended() bool {
	return s.ended
}

// Start searches the entrance hall. It is meant to be called once before the first Step.
func (s *Session) Start(ctx context.Context) Visit {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "exploration started",
		slog.String("root", s.current.Name), slog.Int("rooms", s.tree.Len()))
	return s.enter(ctx)
}

// Step parses token and applies it. Navigation that is not possible returns an error wrapping ErrInvalidNavigation
// and leaves the session as it was.
func (s *Session) Step(ctx context.Context, token string) (Outcome, error) {
	if s.ended {
		return Outcome{}, errors.Wrap(ErrSessionEnded, "step", slog.String("token", token))
	}
	cmd, err := ParseCommand(token)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "ignoring token", errors.SlogError(err))
		return Outcome{}, err
	}
	return s.Apply(ctx, cmd)
}

// Apply executes cmd.
func (s *Session) Apply(ctx context.Context, cmd Command) (Outcome, error) {
	if s.ended {
		return Outcome{}, errors.Wrap(ErrSessionEnded, "apply", slog.String("command", cmd.String()))
	}
	ctx = logging.WithAttrs(ctx, slog.String("command", cmd.String()), slog.String("from", s.current.Name))

	switch cmd {
	case Left, Right:
		dir := mansion.Left
		if cmd == Right {
			dir = mansion.Right
		}
		next := s.current.Child(dir)
		if next == nil {
			err := errors.Wrap(ErrInvalidNavigation, "move",
				slog.String("room", s.current.Name), slog.String("direction", dir.String()))
			s.logger.LogAttrs(ctx, slog.LevelDebug, "blocked", errors.SlogError(err))
			return Outcome{}, err
		}
		s.path = append(s.path, s.current)
		s.current = next
	case Back:
		if len(s.path) == 0 {
			err := errors.Wrap(ErrAtRoot, "back", slog.String("room", s.current.Name))
			s.logger.LogAttrs(ctx, slog.LevelDebug, "blocked", errors.SlogError(err))
			return Outcome{}, err
		}
		last := len(s.path) - 1
		s.current = s.path[last]
		s.path[last] = nil
		s.path = s.path[:last]
	case Exit:
		s.ended = true
		s.logger.LogAttrs(ctx, slog.LevelInfo, "exploration ended",
			slog.Int("clues", s.clues.Len()), slog.Int("depth", len(s.path)))
		return Outcome{Command: cmd, Ended: true}, nil
	default:
		return Outcome{}, errors.Wrap(ErrUnrecognizedToken, "apply", slog.Int("command", int(cmd)))
	}

	visit := s.enter(ctx)
	return Outcome{Command: cmd, Visit: &visit}, nil
}

// Run feeds tokens to Step until the session ends or the tokens run out, reporting every token through emit.
func (s *Session) Run(ctx context.Context, tokens iter.Seq[string], emit func(Event)) {
	for token := range tokens {
		outcome, err := s.Step(ctx, token)
		emit(Event{Token: token, Outcome: outcome, Err: err})
		if s.ended {
			return
		}
	}
}

// enter searches the current room.
func (s *Session) enter(ctx context.Context) Visit {
	room := s.current
	visit := Visit{Room: room.Name, Clue: room.Clue, Discovery: NoClue}
	if room.HasClue() {
		if s.clues.Insert(room.Clue) {
			visit.Discovery = NewClue
		} else {
			visit.Discovery = KnownClue
		}
		visit.Suspect, visit.HasSuspect = s.ledger.Lookup(room.Clue)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "entered room",
		slog.String("room", visit.Room),
		slog.String("discovery", visit.Discovery.String()),
		slog.Int("depth", len(s.path)))
	return visit
}
