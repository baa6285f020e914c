package game

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/myrjola/detectivequest/cmd/cli/setup"
	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/exploration"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/tui"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

var Play = &cobra.Command{
	Use:     "play",
	GroupID: "game",
	Short:   "Explore the mansion and accuse a suspect",
	Long: `Starts an investigation. On a terminal the game runs full screen: type left, right, back or exit, or use the
arrow keys (up goes back) and esc to leave the mansion. Without a terminal the commands are read line by line from
stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		interactive := setup.Interactive()
		return withSession(cmd, interactive, func(ctx context.Context, env *setup.Env, cb *models.Casebook,
			session *exploration.Session) error {
			if !interactive {
				g := &lineGame{
					in:       bufio.NewScanner(cmd.InOrStdin()),
					out:      cmd.OutOrStdout(),
					renderer: env.Renderer(cmd.OutOrStdout()),
				}
				_, _, err := g.run(ctx, cb, session)
				return err
			}

			model := tui.New(ctx, session, env.Renderer(os.Stdout), cb.Title, cb.Intro)
			final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			if err != nil {
				return errors.Wrap(err, "run interactive game")
			}
			if m, ok := final.(tui.Model); ok {
				if verdict, accused := m.Verdict(); accused {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), env.Renderer(os.Stdout).Verdict(verdict))
				}
			}
			return nil
		})
	},
}

var Script = &cobra.Command{
	Use:     "script [file]",
	GroupID: "game",
	Short:   "Play a recorded investigation",
	Long: `Reads navigation tokens, one per line, from file or stdin until exit. The next line is the name of the
accused suspect. Blank lines and lines starting with # are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, false, func(ctx context.Context, env *setup.Env, cb *models.Casebook,
			session *exploration.Session) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open script", slog.String("path", args[0]))
				}
				defer f.Close()
				in = f
			}
			g := &lineGame{
				in:       bufio.NewScanner(in),
				out:      cmd.OutOrStdout(),
				renderer: env.Renderer(cmd.OutOrStdout()),
				echo:     true,
			}
			_, _, err := g.run(ctx, cb, session)
			return err
		})
	},
}

// withSession sets up the environment, builds the configured casebook and hands a fresh session to fn.
func withSession(
	cmd *cobra.Command,
	fullScreen bool,
	fn func(ctx context.Context, env *setup.Env, cb *models.Casebook, session *exploration.Session) error,
) (err error) {
	env, err := setup.Open(cmd)
	if err != nil {
		return err
	}
	if fullScreen {
		env.SilenceStderr()
	}
	ctx := cmd.Context()
	defer func() {
		err = errors.Join(err, env.Close(ctx))
	}()

	cb, err := env.Casebook(ctx)
	if err != nil {
		return err
	}
	m, l, err := casebook.Build(ctx, cb, env.Logger)
	if err != nil {
		return err
	}
	session := exploration.New(m, l, env.Logger)
	ctx = logging.WithAttrs(ctx, slog.String("casebook", cb.ID), slog.String("cli_command", cmd.Name()))
	return fn(ctx, env, cb, session)
}
