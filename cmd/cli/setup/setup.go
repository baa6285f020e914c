// Package setup resolves the configuration, logger and casebook shared by the commands.
package setup

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/myrjola/detectivequest/internal/casebook"
	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/report"
	"github.com/myrjola/detectivequest/internal/repositories"
	"github.com/myrjola/detectivequest/internal/sqlite"
	"github.com/spf13/cobra"
)

const (
	FlagCasebook   = "casebook"
	FlagSQLiteURL  = "sqlite-url"
	FlagCasebookID = "casebook-id"
	FlagLogLevel   = "log-level"
)

var ErrNoDatabase = errors.NewSentinel("no casebook database configured")

// BindFlags registers the persistent flags that override the environment.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(FlagCasebook, "", "path to a YAML casebook (env DQ_CASEBOOK)")
	flags.String(FlagSQLiteURL, "", "SQLite casebook database, :memory: for a throwaway one (env DQ_SQLITE_URL)")
	flags.String(FlagCasebookID, "", "casebook to load from the database (env DQ_CASEBOOK_ID, default reference)")
	flags.String(FlagLogLevel, "", "debug, info, warn or error (env DQ_LOG_LEVEL, default info)")
}

type Env struct {
	Config config.Config
	Logger *slog.Logger

	level    slog.Level
	closeLog func() error
	db       *sqlite.Database
}

// Open loads the configuration, applies the flags of cmd and opens the logger.
func Open(cmd *cobra.Command) (*Env, error) {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	for name, dst := range map[string]*string{
		FlagCasebook:   &cfg.Casebook,
		FlagSQLiteURL:  &cfg.SQLiteURL,
		FlagCasebookID: &cfg.CasebookID,
		FlagLogLevel:   &cfg.LogLevel,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if *dst, err = cmd.Flags().GetString(name); err != nil {
			return nil, errors.Wrap(err, "read flag", slog.String("flag", name))
		}
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}
	return &Env{
		Config:   cfg,
		Logger:   logger,
		level:    level,
		closeLog: closeLog,
	}, nil
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SilenceStderr drops the logs when they would go to stderr, which a full screen program owns.
func (e *Env) SilenceStderr() {
	if e.Config.LogFile == "" {
		e.Logger = logging.New(io.Discard, e.level)
	}
}

// Renderer renders in color when color is enabled and w is a terminal.
func (e *Env) Renderer(w io.Writer) *report.Renderer {
	f, ok := w.(*os.File)
	return report.New(e.Config.Color && ok && isTerminal(f))
}

// Repository opens the casebook database.
func (e *Env) Repository(ctx context.Context) (*repositories.CasebookRepository, error) {
	if e.Config.SQLiteURL == "" {
		return nil, errors.Wrap(ErrNoDatabase, "open repository")
	}
	if e.db == nil {
		db, err := sqlite.NewDatabase(ctx, e.Config.SQLiteURL, e.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "open casebook database")
		}
		e.db = db
	}
	return repositories.NewCasebookRepository(e.db, e.Logger), nil
}

// Casebook loads the configured casebook: a YAML file, then the database, then the built-in reference case.
func (e *Env) Casebook(ctx context.Context) (*models.Casebook, error) {
	switch {
	case e.Config.Casebook != "":
		return casebook.Load(e.Config.Casebook)
	case e.Config.SQLiteURL != "":
		repo, err := e.Repository(ctx)
		if err != nil {
			return nil, err
		}
		return repo.Get(ctx, e.Config.CasebookID)
	case e.Config.CasebookID == "" || e.Config.CasebookID == "reference":
		return casebook.Reference()
	default:
		return nil, errors.Wrap(ErrNoDatabase, "load casebook", slog.String("id", e.Config.CasebookID))
	}
}

// Close releases the database and the log file.
func (e *Env) Close(ctx context.Context) error {
	var errs []error
	if e.db != nil {
		errs = append(errs, e.db.Close(ctx))
	}
	errs = append(errs, errors.Wrap(e.closeLog(), "close log"))
	return errors.Join(errs...)
}
