package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/myrjola/detectivequest/cmd/cli/cases"
	"github.com/myrjola/detectivequest/cmd/cli/game"
	"github.com/myrjola/detectivequest/cmd/cli/setup"
	"github.com/spf13/cobra"
)

func init() {
	setup.BindFlags(rootCmd)
	rootCmd.AddGroup(game.Group)
	rootCmd.AddCommand(game.Play, game.Script)
	rootCmd.AddGroup(cases.Group)
	rootCmd.AddCommand(cases.Casebook)
}

var rootCmd = &cobra.Command{
	Use:   "detectivequest",
	Short: "Explore a mansion, collect clues and accuse a suspect",
	Long: `Detective Quest is a console mystery. Walk the rooms of a mansion, collect the clues you find and accuse
the suspect at least two of them point to.

Settings are read from the environment and an optional .env file (DQ_LOG_LEVEL, DQ_LOG_FILE, DQ_CASEBOOK,
DQ_SQLITE_URL, DQ_CASEBOOK_ID, DQ_COLOR); flags take precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Execute(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
