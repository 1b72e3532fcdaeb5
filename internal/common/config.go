package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

// NewLogger builds the JSON stderr logger; --quiet limits it to errors.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig resolves configuration for a command: defaults, the YAML file
// (--config, or cooccur.yaml when present), a .env file and COOCCUR_* variables,
// then any flags set on the command line.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	if !c.IsSet("config") && !(&storage.Storage{}).HasFile(models.DefaultConfigFile) {
		path = ""
	}

	cfg, err := models.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load() // .env is optional
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("results-dir") {
		cfg.ResultsDir = c.String("results-dir")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.Bool("no-history") {
		cfg.NoHistory = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
