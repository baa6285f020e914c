package mansion

import (
	"log/slog"

	"github.com/myrjola/detectivequest/internal/errors"
)

var (
	ErrDuplicateRoom = errors.NewSentinel("duplicate room name")
	ErrUnknownRoom   = errors.NewSentinel("unknown room")
	ErrSlotTaken     = errors.NewSentinel("exit already linked")
	ErrReentrant     = errors.NewSentinel("room reachable by more than one path")
	ErrUnreachable   = errors.NewSentinel("room not reachable from root")
	ErrEmptyName     = errors.NewSentinel("room name is empty")
)

// Map is a built mansion. It owns every room reachable from its root and is never mutated after Build.
type Map struct {
	root  *Room
	rooms map[string]*Room
	depth int
}

func (m *Map) Root() *Room {
	return m.root
}

// Room looks up a room by name.
func (m *Map) Room(name string) (*Room, bool) {
	r, ok := m.rooms[name]
	return r, ok
}

// Len returns the number of rooms.
func (m *Map) Len() int {
	return len(m.rooms)
}

// Depth returns the number of rooms on the longest root-to-leaf path.
func (m *Map) Depth() int {
	return m.depth
}

// Walk visits every room in pre-order (room, left subtree, right subtree) together with its depth, the root having
// depth 0. Returning false from fn stops the walk.
func (m *Map) Walk(fn func(room *Room, depth int) bool) {
	walk(m.root, 0, fn)
}

func walk(r *Room, depth int, fn func(*Room, int) bool) bool {
	if r == nil {
		return true
	}
	if !fn(r, depth) {
		return false
	}
	return walk(r.left, depth+1, fn) && walk(r.right, depth+1, fn)
}

// Builder wires rooms into a Map. The zero value is ready to use.
type Builder struct {
	rooms map[string]*Room
	order []string
}

// AddRoom creates a room and registers it under its (possibly truncated) name.
func (b *Builder) AddRoom(name, clue string) (*Room, error) {
	if name == "" {
		return nil, errors.Wrap(ErrEmptyName, "add room")
	}
	if b.rooms == nil {
		b.rooms = make(map[string]*Room)
	}
	room := NewRoom(name, clue)
	if _, ok := b.rooms[room.Name]; ok {
		return nil, errors.Wrap(ErrDuplicateRoom, "add room", slog.String("room", room.Name))
	}
	b.rooms[room.Name] = room
	b.order = append(b.order, room.Name)
	return room, nil
}

// Link attaches child under parent in direction d.
func (b *Builder) Link(parent string, d Direction, child string) error {
	p, ok := b.rooms[parent]
	if !ok {
		return errors.Wrap(ErrUnknownRoom, "link parent", slog.String("room", parent))
	}
	c, ok := b.rooms[child]
	if !ok {
		return errors.Wrap(ErrUnknownRoom, "link child", slog.String("room", child))
	}
	if p.Child(d) != nil {
		return errors.Wrap(ErrSlotTaken, "link",
			slog.String("room", parent), slog.String("direction", d.String()))
	}
	switch d {
	case Left:
		p.left = c
	case Right:
		p.right = c
	}
	return nil
}

// Build validates the wiring and returns the Map rooted at root. Every registered room must be reachable from root
// exactly once, which rules out cycles and shared subtrees.
func (b *Builder) Build(root string) (*Map, error) {
	r, ok := b.rooms[root]
	if !ok {
		return nil, errors.Wrap(ErrUnknownRoom, "build", slog.String("root", root))
	}

	seen := make(map[*Room]bool, len(b.rooms))
	depth, err := measure(r, seen)
	if err != nil {
		return nil, err
	}
	for _, name := range b.order {
		if !seen[b.rooms[name]] {
			return nil, errors.Wrap(ErrUnreachable, "build", slog.String("room", name))
		}
	}

	// The map takes ownership; later links through this builder must not reach its rooms.
	m := &Map{root: r, rooms: b.rooms, depth: depth}
	b.rooms, b.order = nil, nil
	return m, nil
}

func measure(r *Room, seen map[*Room]bool) (int, error) {
	if r == nil {
		return 0, nil
	}
	if seen[r] {
		return 0, errors.Wrap(ErrReentrant, "build", slog.String("room", r.Name))
	}
	seen[r] = true
	left, err := measure(r.left, seen)
	if err != nil {
		return 0, err
	}
	right, err := measure(r.right, seen)
	if err != nil {
		return 0, err
	}
	return 1 + max(left, right), nil
}
