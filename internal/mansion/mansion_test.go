package mansion_test

import (
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildReference wires the mansion used throughout the game's reference casebook.
func buildReference(t *testing.T) *mansion.Map {
	t.Helper()
	var b mansion.Builder
	for _, r := range []struct{ name, clue string }{
		{"Hall", "pegadas molhadas"},
		{"SalaA", "fio de cabelo ruivo"},
		{"SalaB", ""},
		{"SalaC", "marca de fumaça no tapete"},
		{"SalaD", "copo com pegadas digitais"},
		{"SalaE", "bilhete rasgado"},
	} {
		_, err := b.AddRoom(r.name, r.clue)
		require.NoError(t, err)
	}
	require.NoError(t, b.Link("Hall", mansion.Left, "SalaA"))
	require.NoError(t, b.Link("Hall", mansion.Right, "SalaB"))
	require.NoError(t, b.Link("SalaA", mansion.Left, "SalaC"))
	require.NoError(t, b.Link("SalaA", mansion.Right, "SalaD"))
	require.NoError(t, b.Link("SalaB", mansion.Right, "SalaE"))
	m, err := b.Build("Hall")
	require.NoError(t, err)
	return m
}

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name          string
		roomName      string
		clue          string
		wantName      string
		wantClue      string
		wantTruncated bool
	}{
		{
			name:     "room without clue",
			roomName: "SalaB",
			wantName: "SalaB",
		},
		{
			name:     "room with clue",
			roomName: "Hall",
			clue:     "pegadas molhadas",
			wantName: "Hall",
			wantClue: "pegadas molhadas",
		},
		{
			name:          "long name is truncated",
			roomName:      strings.Repeat("n", mansion.MaxNameLen+10),
			wantName:      strings.Repeat("n", mansion.MaxNameLen),
			wantTruncated: true,
		},
		{
			name:          "long clue is truncated",
			roomName:      "Hall",
			clue:          strings.Repeat("c", mansion.MaxClueLen+1),
			wantName:      "Hall",
			wantClue:      strings.Repeat("c", mansion.MaxClueLen),
			wantTruncated: true,
		},
		{
			name:          "truncation keeps utf-8 intact",
			roomName:      strings.Repeat("n", mansion.MaxNameLen-1) + "ç",
			wantName:      strings.Repeat("n", mansion.MaxNameLen-1),
			wantTruncated: true,
		},
		{
			name:     "exact limit is kept",
			roomName: strings.Repeat("n", mansion.MaxNameLen),
			wantName: strings.Repeat("n", mansion.MaxNameLen),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := mansion.NewRoom(tt.roomName, tt.clue)
			require.Equal(t, tt.wantName, room.Name)
			require.Equal(t, tt.wantClue, room.Clue)
			require.Equal(t, tt.wantTruncated, room.Truncated())
			require.Equal(t, tt.wantClue != "", room.HasClue())
			require.True(t, room.IsLeaf())
			require.Nil(t, room.Left())
			require.Nil(t, room.Right())
		})
	}
}

func TestMap_Traversal(t *testing.T) {
	m := buildReference(t)

	require.Equal(t, 6, m.Len())
	require.Equal(t, 3, m.Depth())

	hall := m.Root()
	require.Equal(t, "Hall", hall.Name)
	require.Equal(t, "SalaA", hall.Left().Name)
	require.Equal(t, "SalaB", hall.Right().Name)
	require.Equal(t, hall.Left(), hall.Child(mansion.Left))
	require.Equal(t, hall.Right(), hall.Child(mansion.Right))

	salaB, ok := m.Room("SalaB")
	require.True(t, ok)
	require.False(t, salaB.HasClue())
	require.Nil(t, salaB.Left())
	require.Equal(t, "SalaE", salaB.Right().Name)

	salaE, ok := m.Room("SalaE")
	require.True(t, ok)
	require.True(t, salaE.IsLeaf())

	_, ok = m.Room("Cellar")
	require.False(t, ok)
}

func TestMap_Walk(t *testing.T) {
	m := buildReference(t)

	var visited []string
	var depths []int
	m.Walk(func(room *mansion.Room, depth int) bool {
		visited = append(visited, room.Name)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"Hall", "SalaA", "SalaC", "SalaD", "SalaB", "SalaE"}, visited)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2}, depths)

	visited = nil
	m.Walk(func(room *mansion.Room, _ int) bool {
		visited = append(visited, room.Name)
		return room.Name != "SalaC"
	})
	assert.Equal(t, []string{"Hall", "SalaA", "SalaC"}, visited)
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(b *mansion.Builder) error
		wantErr error
	}{
		{
			name: "duplicate room",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, err := b.AddRoom("Hall", "other")
				return err
			},
			wantErr: mansion.ErrDuplicateRoom,
		},
		{
			name: "empty name",
			build: func(b *mansion.Builder) error {
				_, err := b.AddRoom("", "clue")
				return err
			},
			wantErr: mansion.ErrEmptyName,
		},
		{
			name: "unknown child",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				return b.Link("Hall", mansion.Left, "Cellar")
			},
			wantErr: mansion.ErrUnknownRoom,
		},
		{
			name: "unknown parent",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				return b.Link("Attic", mansion.Left, "Hall")
			},
			wantErr: mansion.ErrUnknownRoom,
		},
		{
			name: "slot linked twice",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, _ = b.AddRoom("SalaA", "")
				_, _ = b.AddRoom("SalaB", "")
				_ = b.Link("Hall", mansion.Left, "SalaA")
				return b.Link("Hall", mansion.Left, "SalaB")
			},
			wantErr: mansion.ErrSlotTaken,
		},
		{
			name: "unknown root",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, err := b.Build("Attic")
				return err
			},
			wantErr: mansion.ErrUnknownRoom,
		},
		{
			name: "cycle",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, _ = b.AddRoom("SalaA", "")
				_ = b.Link("Hall", mansion.Left, "SalaA")
				_ = b.Link("SalaA", mansion.Right, "Hall")
				_, err := b.Build("Hall")
				return err
			},
			wantErr: mansion.ErrReentrant,
		},
		{
			name: "shared subtree",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, _ = b.AddRoom("SalaA", "")
				_ = b.Link("Hall", mansion.Left, "SalaA")
				_ = b.Link("Hall", mansion.Right, "SalaA")
				_, err := b.Build("Hall")
				return err
			},
			wantErr: mansion.ErrReentrant,
		},
		{
			name: "orphan room",
			build: func(b *mansion.Builder) error {
				_, _ = b.AddRoom("Hall", "")
				_, _ = b.AddRoom("Attic", "")
				_, err := b.Build("Hall")
				return err
			},
			wantErr: mansion.ErrUnreachable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b mansion.Builder
			require.ErrorIs(t, tt.build(&b), tt.wantErr)
		})
	}
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "left", mansion.Left.String())
	require.Equal(t, "right", mansion.Right.String())
	require.Equal(t, "unknown", mansion.Direction(7).String())
}
