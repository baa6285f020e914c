package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/myrjola/detectivequest/internal/accusation"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/report"
)

// lineGame plays a session over line based input: navigation tokens until exit, then the name of the accused.
type lineGame struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *report.Renderer
	// echo repeats every input line, for input that is not typed on a terminal.
	echo bool
	// prompt is printed before every read.
	prompt bool
}

// run returns the verdict, or false when the input ended before anyone was accused.
func (g *lineGame) run(
	ctx context.Context,
	cb *models.Casebook,
	session *exploration.Session,
) (accusation.Verdict, bool, error) {
	g.print(g.renderer.Title(cb.Title, cb.Intro))
	g.print(g.renderer.Help())
	g.print("")
	g.print(g.renderer.Visit(session.Start(ctx)))

	for !session.Ended() {
		token, ok := g.read("> ", true)
		if !ok {
			break
		}
		outcome, err := session.Step(ctx, token)
		if err != nil {
			g.print(g.renderer.NavigationError(err))
			continue
		}
		g.print(g.renderer.Outcome(outcome))
	}
	if err := g.in.Err(); err != nil {
		return accusation.Verdict{}, false, errors.Wrap(err, "read commands")
	}

	g.print("")
	g.print(g.renderer.Clues(session.Clues()))
	g.print("")
	g.print(g.renderer.Suspects(session.Ledger()))
	if !session.Ended() {
		g.print("")
		g.print("Input ended during the exploration. No accusation made.")
		return accusation.Verdict{}, false, nil
	}

	g.print("")
	g.print("Who do you accuse? Type the exact name.")
	// The name is matched exactly, so only the line ending is removed.
	name, ok := g.read("accuse> ", false)
	if !ok {
		if err := g.in.Err(); err != nil {
			return accusation.Verdict{}, false, errors.Wrap(err, "read accusation")
		}
		g.print("No accusation made.")
		return accusation.Verdict{}, false, nil
	}
	verdict := accusation.Evaluate(session.Clues(), session.Ledger(), name)
	g.print("")
	g.print(g.renderer.Verdict(verdict))
	return verdict, true, nil
}

// read returns the next line that is not blank and not a # comment.
func (g *lineGame) read(prompt string, trim bool) (string, bool) {
	for {
		if g.prompt {
			_, _ = fmt.Fprint(g.out, prompt)
		}
		if !g.in.Scan() {
			return "", false
		}
		line := strings.TrimSuffix(g.in.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trim {
			line = strings.TrimSpace(line)
		}
		if g.echo {
			g.print(prompt + line)
		}
		return line, true
	}
}

func (g *lineGame) print(text string) {
	_, _ = fmt.Fprintln(g.out, text)
}
