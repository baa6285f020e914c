package cases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/myrjola/detectivequest/cmd/cli/setup"
	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "casebook",
	Title: "Casebooks",
}

func init() {
	Casebook.AddCommand(Show, List, Import)
}

var Casebook = &cobra.Command{
	Use:     "casebook",
	GroupID: "casebook",
	Short:   "Inspect and store casebooks",
}

var Show = &cobra.Command{
	Use:   "show",
	Short: "Show the mansion map and the suspect ledger",
	Long: `Shows the configured casebook: the mansion as a tree, the suspects and the ledger buckets with their chains.
Clues that point to nobody and associations for clues no room holds are listed as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withEnv(cmd, func(ctx context.Context, env *setup.Env) error {
			cb, err := env.Casebook(ctx)
			if err != nil {
				return err
			}
			m, l, err := casebook.Build(ctx, cb, env.Logger)
			if err != nil {
				return err
			}
			r := env.Renderer(cmd.OutOrStdout())
			sections := []string{
				r.Title(cb.Title, cb.Intro),
				r.MapTree(m),
				r.Suspects(l),
				r.Ledger(l),
			}
			if clues := casebook.Unattributed(cb); len(clues) > 0 {
				sections = append(sections, "Clues pointing to nobody:\n - "+strings.Join(clues, "\n - "))
			}
			if clues := casebook.Unused(cb); len(clues) > 0 {
				sections = append(sections, "Associations for clues no room holds:\n - "+strings.Join(clues, "\n - "))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sections, "\n\n"))
			return nil
		})
	},
}

var List = &cobra.Command{
	Use:   "list",
	Short: "List the casebooks in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withEnv(cmd, func(ctx context.Context, env *setup.Env) error {
			repo, err := env.Repository(ctx)
			if err != nil {
				return err
			}
			summaries, err := repo.List(ctx)
			if err != nil {
				return err
			}
			for _, s := range summaries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-16s %3d rooms  %s\n", s.ID, s.Rooms, s.Title)
			}
			return nil
		})
	},
}

var Import = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Validate a YAML casebook and store it in the database",
	Long:  `Stores the casebook under its id, replacing a stored casebook with the same id. Invalid casebooks are rejected.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *setup.Env) error {
			cb, err := casebook.Load(args[0])
			if err != nil {
				return err
			}
			if cb.ID == "" {
				return errors.Wrap(casebook.ErrInvalidCasebook, "import needs an id", slog.String("path", args[0]))
			}
			if _, _, err = casebook.Build(ctx, cb, env.Logger); err != nil {
				return err
			}
			repo, err := env.Repository(ctx)
			if err != nil {
				return err
			}
			if err = repo.Save(ctx, cb); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d rooms, %d associations)\n",
				cb.ID, len(cb.Rooms), len(cb.Associations))
			return nil
		})
	},
}

func withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *setup.Env) error) (err error) {
	env, err := setup.Open(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer func() {
		err = errors.Join(err, env.Close(ctx))
	}()
	return fn(ctx, env)
}
