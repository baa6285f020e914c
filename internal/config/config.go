// Package config reads the runtime configuration from the environment and an optional .env file.
package config

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/errors"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"DQ_LOG_LEVEL" envDefault:"info"`
	// LogFile receives the logs. Empty means stderr.
	LogFile string `env:"DQ_LOG_FILE" envDefault:""`
	// Casebook is the path to a YAML casebook. It takes precedence over SQLiteURL.
	Casebook string `env:"DQ_CASEBOOK" envDefault:""`
	// SQLiteURL is the casebook database. Empty means the built-in reference case.
	SQLiteURL  string `env:"DQ_SQLITE_URL" envDefault:""`
	CasebookID string `env:"DQ_CASEBOOK_ID" envDefault:"reference"`
	Color      bool   `env:"DQ_COLOR" envDefault:"true"`
}

// Load reads the dotenv files, .env by default, into the process environment without overriding variables that are
// already set, and populates a Config with lookupEnv. Missing dotenv files are ignored.
func Load(lookupEnv func(string) (string, bool), dotenvFiles ...string) (Config, error) {
	var cfg Config
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(err, "load dotenv file")
		}
	}
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return cfg, errors.Wrap(err, "populate config")
	}
	return cfg, nil
}
