// Package casebook loads case seed data and turns it into a mansion map and a suspect ledger.
package casebook

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var referenceYAML []byte

var ErrInvalidCasebook = errors.NewSentinel("invalid casebook")

// Decode reads a YAML casebook. Unknown fields are rejected.
func Decode(r io.Reader) (*models.Casebook, error) {
	var cb models.Casebook
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cb); err != nil {
		return nil, errors.Join(ErrInvalidCasebook, errors.Wrap(err, "decode casebook"))
	}
	if cb.Root == "" {
		return nil, errors.Wrap(ErrInvalidCasebook, "root room missing", slog.String("id", cb.ID))
	}
	if len(cb.Rooms) == 0 {
		return nil, errors.Wrap(ErrInvalidCasebook, "no rooms", slog.String("id", cb.ID))
	}
	return &cb, nil
}

// Load reads a YAML casebook from path.
func Load(path string) (*models.Casebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open casebook", slog.String("path", path))
	}
	defer f.Close()
	cb, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "load casebook", slog.String("path", path))
	}
	return cb, nil
}

// Reference returns a fresh copy of the built-in case.
func Reference() (*models.Casebook, error) {
	return Decode(bytes.NewReader(referenceYAML))
}

// Build wires the rooms of cb into a map and fills a ledger with its associations in file order, so a later
// association for the same clue wins.
func Build(ctx context.Context, cb *models.Casebook, logger *slog.Logger) (*mansion.Map, *ledger.Ledger, error) {
	logger = logger.With("source", "casebook", "casebook", cb.ID)

	var b mansion.Builder
	names := make(map[string]string, len(cb.Rooms))
	for _, rs := range cb.Rooms {
		room, err := b.AddRoom(rs.Name, rs.Clue)
		if err != nil {
			return nil, nil, errors.Join(ErrInvalidCasebook, errors.Wrap(err, "add room"))
		}
		if room.Truncated() {
			logger.LogAttrs(ctx, slog.LevelWarn, "room text truncated",
				slog.String("room", rs.Name), slog.String("stored", room.Name))
		}
		names[rs.Name] = room.Name
	}
	for _, rs := range cb.Rooms {
		for _, exit := range []struct {
			dir  mansion.Direction
			name string
		}{{mansion.Left, rs.Left}, {mansion.Right, rs.Right}} {
			if exit.name == "" {
				continue
			}
			child, ok := names[exit.name]
			if !ok {
				child = exit.name
			}
			if err := b.Link(names[rs.Name], exit.dir, child); err != nil {
				return nil, nil, errors.Join(ErrInvalidCasebook, errors.Wrap(err, "link rooms"))
			}
		}
	}
	root, ok := names[cb.Root]
	if !ok {
		root = cb.Root
	}
	m, err := b.Build(root)
	if err != nil {
		return nil, nil, errors.Join(ErrInvalidCasebook, errors.Wrap(err, "build mansion"))
	}

	l := ledger.New()
	for _, a := range cb.Associations {
		l.Upsert(a.Clue, a.Suspect)
	}

	for _, clue := range Unused(cb) {
		logger.LogAttrs(ctx, slog.LevelWarn, "association for a clue no room holds", slog.String("clue", clue))
	}
	for _, clue := range Unattributed(cb) {
		logger.LogAttrs(ctx, slog.LevelDebug, "clue points to no suspect", slog.String("clue", clue))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "casebook built",
		slog.Int("rooms", m.Len()), slog.Int("associations", l.Len()), slog.Int("depth", m.Depth()))

	return m, l, nil
}

// Unattributed returns the room clues that no association mentions, in room order.
func Unattributed(cb *models.Casebook) []string {
	attributed := make(map[string]bool, len(cb.Associations))
	for _, a := range cb.Associations {
		attributed[a.Clue] = true
	}
	var clues []string
	for _, r := range cb.Rooms {
		if r.Clue != "" && !attributed[r.Clue] {
			clues = append(clues, r.Clue)
		}
	}
	return clues
}

// Unused returns the association clues that no room holds, in association order.
func Unused(cb *models.Casebook) []string {
	held := make(map[string]bool, len(cb.Rooms))
	for _, r := range cb.Rooms {
		held[r.Clue] = true
	}
	var clues []string
	for _, a := range cb.Associations {
		if !held[a.Clue] {
			clues = append(clues, a.Clue)
		}
	}
	return clues
}
