package game

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/report"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func newReferenceSession(t *testing.T) (*models.Casebook, *exploration.Session) {
	t.Helper()
	cb, err := casebook.Reference()
	require.NoError(t, err)
	logger := testhelpers.NewLogger(io.Discard)
	m, l, err := casebook.Build(context.Background(), cb, logger)
	require.NoError(t, err)
	return cb, exploration.New(m, l, logger)
}

func TestLineGame(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAccused bool
		wantCount   int
		wantValid   bool
		wantOutput  []string
	}{
		{
			name: "reference scenario",
			input: `# reference walk
left
left
back
right
back
back

right
right
exit
Sra. Rosa
`,
			wantAccused: true,
			wantCount:   2,
			wantValid:   true,
			wantOutput: []string{
				"> left",
				"Room: SalaC",
				"Clue present: fio de cabelo ruivo (already collected)",
				"Collected clues (5)",
				"accuse> Sra. Rosa",
				"ACCUSATION UPHELD",
			},
		},
		{
			name:        "navigation mistakes are reported",
			input:       "back\nup\nright\nleft\nexit\nSr. Verde\n",
			wantAccused: true,
			wantCount:   1,
			wantValid:   false,
			wantOutput: []string{
				"You are at the entrance, there is nowhere to go back to.",
				"Unrecognized command.",
				"There is no room that way.",
				"INSUFFICIENT EVIDENCE",
			},
		},
		{
			name:        "name is not trimmed",
			input:       "exit\nSr. Verde \r\n",
			wantAccused: true,
			wantCount:   0,
		},
		{
			name:       "input ends during exploration",
			input:      "left\n",
			wantOutput: []string{"Input ended during the exploration. No accusation made."},
		},
		{
			name:       "input ends before the accusation",
			input:      "exit\n\n",
			wantOutput: []string{"Who do you accuse?", "No accusation made."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, session := newReferenceSession(t)
			var out bytes.Buffer
			g := &lineGame{
				in:       bufio.NewScanner(strings.NewReader(tt.input)),
				out:      &out,
				renderer: report.New(false),
				echo:     true,
			}
			verdict, accused, err := g.run(context.Background(), cb, session)
			require.NoError(t, err)
			require.Equal(t, tt.wantAccused, accused)
			if tt.wantAccused {
				require.Equal(t, tt.wantCount, verdict.Count)
				require.Equal(t, tt.wantValid, verdict.Valid)
			}
			for _, want := range tt.wantOutput {
				require.Contains(t, out.String(), want)
			}
		})
	}
}

func TestLineGame_Prompt(t *testing.T) {
	cb, session := newReferenceSession(t)
	var out bytes.Buffer
	g := &lineGame{
		in:       bufio.NewScanner(strings.NewReader("exit\nX\n")),
		out:      &out,
		renderer: report.New(false),
		prompt:   true,
	}
	_, accused, err := g.run(context.Background(), cb, session)
	require.NoError(t, err)
	require.True(t, accused)
	require.Contains(t, out.String(), "> Leaving the mansion.")
	require.Contains(t, out.String(), "accuse> \nAccusation: X")
}
