// Package mansion models the mansion map as a binary tree of rooms.
//
// Rooms are created with NewRoom and wired together by a Builder, which hands out an immutable Map. A Map owns all
// of its rooms and can be shared read-only between sessions.
package mansion

import "unicode/utf8"

const (
	// MaxNameLen is the maximum length of a room name in bytes. Longer names are truncated.
	MaxNameLen = 63
	// MaxClueLen is the maximum length of a clue in bytes. Longer clues are truncated.
	MaxClueLen = 127
)

// Direction is one of the two exits of a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Room is a node of the mansion map. An empty Clue means the room holds no clue.
type Room struct {
	Name string
	Clue string

	left      *Room
	right     *Room
	truncated bool
}

// NewRoom creates a detached room. The name and clue are truncated to MaxNameLen and MaxClueLen bytes without
// splitting a UTF-8 sequence; Truncated reports whether that happened.
func NewRoom(name, clue string) *Room {
	var nameCut, clueCut bool
	name, nameCut = truncate(name, MaxNameLen)
	clue, clueCut = truncate(clue, MaxClueLen)
	return &Room{
		Name:      name,
		Clue:      clue,
		truncated: nameCut || clueCut,
	}
}

// Left returns the left child or nil.
func (r *Room) Left() *Room {
	return r.left
}

// Right returns the right child or nil.
func (r *Room) Right() *Room {
	return r.right
}

// Child returns the child in direction d or nil.
func (r *Room) Child(d Direction) *Room {
	switch d {
	case Left:
		return r.left
	case Right:
		return r.right
	default:
		return nil
	}
}

func (r *Room) HasClue() bool {
	return r.Clue != ""
}

func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Truncated reports whether the name or clue given to NewRoom was cut to fit.
func (r *Room) Truncated() bool {
	return r.truncated
}

func truncate(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}
