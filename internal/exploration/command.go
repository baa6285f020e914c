package exploration

import (
	"log/slog"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

// Command is a navigation instruction.
type Command int

const (
	Left Command = iota
	Right
	Back
	Exit
)

func (c Command) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Back:
		return "back"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// e, d and s are the Portuguese keys: esquerda, direita, sair.
var commands = map[string]Command{
	"left":  Left,
	"l":     Left,
	"e":     Left,
	"right": Right,
	"r":     Right,
	"d":     Right,
	"back":  Back,
	"b":     Back,
	"exit":  Exit,
	"x":     Exit,
	"quit":  Exit,
	"q":     Exit,
	"s":     Exit,
}

// ParseCommand parses a navigation token. Tokens are trimmed and matched case-insensitively against the command
// names and their one-letter aliases.
//
// Only the token as a whole is matched; "lef" or "left right" are unrecognized.
func ParseCommand(token string) (Command, error) {
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, errors.Wrap(ErrUnrecognizedToken, "parse command", slog.String("token", token))
	}
	return cmd, nil
}
