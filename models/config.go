// Package models defines data structures for configuration and aggregation results.
package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "cooccur.yaml"
	DefaultInput      = "datasets/netflix_titles.csv"
	DefaultResultsDir = "results"
	DefaultTopN       = 100
	DefaultDBName     = "cooccur.db"
)

// Config holds runtime configuration. Values are layered:
// defaults, then the YAML file, then COOCCUR_* environment variables, then CLI flags.
type Config struct {
	Input      string     `yaml:"input"`
	ResultsDir string     `yaml:"results_dir"`
	TopN       int        `yaml:"top_n"`
	DBPath     string     `yaml:"db_path,omitempty"`
	NoHistory  bool       `yaml:"no_history,omitempty"`
	Labels     Labels     `yaml:"labels"`
	Questions  []Question `yaml:"questions"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:      DefaultInput,
		ResultsDir: DefaultResultsDir,
		TopN:       DefaultTopN,
		Labels:     DefaultLabels(),
		Questions:  DefaultQuestions(),
	}
}

// LoadConfig reads a YAML config file over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Questions) == 0 {
		cfg.Questions = DefaultQuestions()
	}

	return cfg, nil
}

// ApplyEnv overlays COOCCUR_INPUT, COOCCUR_RESULTS_DIR, COOCCUR_TOP_N and COOCCUR_DB.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv("COOCCUR_INPUT")); v != "" {
		c.Input = v
	}
	if v := strings.TrimSpace(os.Getenv("COOCCUR_RESULTS_DIR")); v != "" {
		c.ResultsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("COOCCUR_DB")); v != "" {
		c.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("COOCCUR_TOP_N")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid COOCCUR_TOP_N %q: %w", v, err)
		}
		c.TopN = n
	}
	return nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Input == "" {
		return errors.New("input path is required")
	}
	seen := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return errors.New("question id is required")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

// HistoryPath is the SQLite database used for run history.
func (c *Config) HistoryPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(c.ResultsDir, DefaultDBName)
}

// QuestionDir is the results directory for one question.
func (c *Config) QuestionDir(questionID string) string {
	return filepath.Join(c.ResultsDir, questionID)
}
