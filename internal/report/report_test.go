package report_test

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/detectivequest/internal/accusation"
	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/clueindex"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/report"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Visit(t *testing.T) {
	r := report.New(false)
	tests := []struct {
		name  string
		visit exploration.Visit
		want  string
	}{
		{
			name:  "new clue with suspect",
			visit: exploration.Visit{Room: "Hall", Clue: "mud", Discovery: exploration.NewClue, Suspect: "X", HasSuspect: true},
			want:  "Room: Hall\nYou found a clue: mud\n -> points to X",
		},
		{
			name:  "known clue",
			visit: exploration.Visit{Room: "Hall", Clue: "mud", Discovery: exploration.KnownClue},
			want:  "Room: Hall\nClue present: mud (already collected)",
		},
		{
			name:  "empty room",
			visit: exploration.Visit{Room: "SalaB", Discovery: exploration.NoClue},
			want:  "Room: SalaB\nNo clue in this room.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, r.Visit(tt.visit))
		})
	}
}

func TestRenderer_NavigationError(t *testing.T) {
	r := report.New(false)
	tests := []struct {
		err  error
		want string
	}{
		{err: errors.Wrap(exploration.ErrAtRoot, "back"), want: "You are at the entrance, there is nowhere to go back to."},
		{err: errors.Wrap(exploration.ErrInvalidNavigation, "move"), want: "There is no room that way."},
		{err: errors.Wrap(exploration.ErrUnrecognizedToken, "parse"), want: "Unrecognized command."},
		{err: exploration.ErrSessionEnded, want: "The exploration is over."},
		{err: errors.New("boom"), want: "boom"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, r.NavigationError(tt.err))
	}
}

func TestRenderer_Outcome(t *testing.T) {
	r := report.New(false)
	require.Equal(t, "Leaving the mansion.", r.Outcome(exploration.Outcome{Command: exploration.Exit, Ended: true}))
	require.Empty(t, r.Outcome(exploration.Outcome{}))
	require.Equal(t, "Room: A\nNo clue in this room.",
		r.Outcome(exploration.Outcome{Visit: &exploration.Visit{Room: "A"}}))
}

func TestRenderer_Lists(t *testing.T) {
	r := report.New(false)

	var clues clueindex.Index
	require.Equal(t, "Collected clues\nNo clues collected.", r.Clues(&clues))
	clues.Insert("b")
	clues.Insert("a")
	require.Equal(t, "Collected clues (2)\n - a\n - b", r.Clues(&clues))

	l := ledger.New()
	require.Equal(t, "Known suspects\nNo suspects on file.", r.Suspects(l))
	l.Upsert("a", "X")
	l.Upsert("k", "Y")
	require.Equal(t, "Known suspects\n - X\n - Y", r.Suspects(l))
	require.Equal(t, "Ledger (2 entries, 17 buckets)\n[ 3] a = X\n[13] k = Y", r.Ledger(l))
}

func TestRenderer_Verdict(t *testing.T) {
	r := report.New(false)

	got := r.Verdict(accusation.Verdict{Suspect: "X", Count: 2, Valid: true, Evidence: []string{"a", "b"}})
	require.Equal(t, "Accusation: X\n2 of your clues point to them.\n - a\n - b\nResult: ACCUSATION UPHELD. Case closed.", got)

	got = r.Verdict(accusation.Verdict{Suspect: "Y", Count: 0})
	require.Equal(t, "Accusation: Y\n0 of your clues point to them.\nResult: INSUFFICIENT EVIDENCE. Investigation inconclusive.", got)
}

func TestRenderer_MapTree(t *testing.T) {
	cb, err := casebook.Reference()
	require.NoError(t, err)
	m, _, err := casebook.Build(context.Background(), cb, testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)

	want := `Hall [pegadas molhadas]
├── L: SalaA [fio de cabelo ruivo]
│   ├── L: SalaC [marca de fumaça no tapete]
│   └── R: SalaD [copo com pegadas digitais]
└── R: SalaB
    └── R: SalaE [bilhete rasgado]`
	require.Equal(t, want, report.New(false).MapTree(m))
}

func TestRenderer_Color(t *testing.T) {
	r := report.New(true)
	require.Contains(t, r.Visit(exploration.Visit{Room: "Hall"}), "Hall")
	require.Contains(t, r.Title("Case", "intro"), "intro")
}
