package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/cooccur-network/pkg/tokenize"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cooccur.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultResultsDir, cfg.ResultsDir)
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Equal(t, DefaultLabels(), cfg.Labels)
	assert.Equal(t, DefaultQuestions(), cfg.Questions)
	assert.Equal(t, filepath.Join("results", "cooccur.db"), cfg.HistoryPath())
	assert.Equal(t, filepath.Join("results", "q2"), cfg.QuestionDir("q2"))
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
top_n: 25
labels:
  none: "no-data"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.TopN)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, "no-data", cfg.Labels.None)
	assert.Equal(t, "Internacional", cfg.Labels.Multi)
	assert.Equal(t, DefaultQuestions(), cfg.Questions)
}

func TestLoadConfig_Questions(t *testing.T) {
	path := writeConfig(t, `
questions:
  - id: flat
    kind: cast
    group_mode: constant
  - id: dirs
    kind: director
    entity_policy:
      delimiter: ";"
      trim: true
      drop_empty: true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Questions, 2)

	flat := cfg.Questions[0]
	assert.Equal(t, KindActor, flat.Kind)
	assert.Equal(t, GroupModeConstant, flat.GroupMode)

	dirs := cfg.Questions[1].Resolved()
	assert.Equal(t, KindDirector, dirs.Kind)
	assert.Equal(t, GroupModeClassified, dirs.GroupMode)
	assert.Equal(t, "director", dirs.EntityColumn)
	assert.Equal(t, DefaultAttributeColumn, dirs.AttributeColumn)
	assert.Equal(t, &tokenize.Policy{Delimiter: ";", Trim: true, DropEmpty: true}, dirs.EntityPolicy)
	assert.Equal(t, KindDirector.AttributePolicy(), *dirs.AttributePolicy)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "questions:\n  - id: q1\n    kind: producer\n"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = LoadConfig(writeConfig(t, "top_n: [1, 2]\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("COOCCUR_INPUT", "other.csv")
	t.Setenv("COOCCUR_RESULTS_DIR", "out")
	t.Setenv("COOCCUR_TOP_N", "7")
	t.Setenv("COOCCUR_DB", "/tmp/history.db")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "other.csv", cfg.Input)
	assert.Equal(t, "out", cfg.ResultsDir)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, "/tmp/history.db", cfg.HistoryPath())

	t.Setenv("COOCCUR_TOP_N", "many")
	assert.Error(t, DefaultConfig().ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero top", func(c *Config) { c.TopN = 0 }, false},
		{"negative top", func(c *Config) { c.TopN = -3 }, false},
		{"no input", func(c *Config) { c.Input = "" }, false},
		{"empty question id", func(c *Config) { c.Questions[0].ID = "" }, false},
		{"duplicate question id", func(c *Config) { c.Questions[1].ID = "q1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseEntityKind(t *testing.T) {
	for _, s := range []string{"actor", "Actors", " cast "} {
		k, err := ParseEntityKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, KindActor, k)
	}

	k, err := ParseEntityKind("DIRECTOR")
	require.NoError(t, err)
	assert.Equal(t, KindDirector, k)
	assert.Equal(t, "Director", k.PointsLabel())
	assert.Equal(t, "director", k.Column())

	_, err = ParseEntityKind("writer")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseGroupMode(t *testing.T) {
	m, err := ParseGroupMode("")
	require.NoError(t, err)
	assert.Equal(t, GroupModeClassified, m)

	m, err = ParseGroupMode("constant")
	require.NoError(t, err)
	assert.Equal(t, GroupModeConstant, m)

	_, err = ParseGroupMode("continent")
	assert.ErrorIs(t, err, ErrUnknownGroupMode)
}

func TestFindQuestion(t *testing.T) {
	qs := DefaultQuestions()

	q, err := FindQuestion(qs, "q2")
	require.NoError(t, err)
	assert.Equal(t, KindDirector, q.Kind)

	q, err = QuestionForKind(qs, KindActor)
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)

	_, err = FindQuestion(qs, "q3")
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	_, err = QuestionForKind(qs[:1], KindDirector)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestNetworkGroupOf(t *testing.T) {
	n := &Network{
		Mode:   GroupModeClassified,
		Labels: DefaultLabels(),
		Groups: map[string]string{"A": "US"},
	}
	assert.Equal(t, "US", n.GroupOf("A"))
	assert.Equal(t, "S/P", n.GroupOf("Z"))

	n.Mode = GroupModeConstant
	assert.Equal(t, "0", n.GroupOf("A"))
}

func TestNewPairIsCanonical(t *testing.T) {
	assert.Equal(t, NewPair("B", "A"), NewPair("A", "B"))
	assert.Equal(t, "A", NewPair("B", "A").Source)
}
