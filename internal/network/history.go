package network

import (
	"log/slog"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/db"
)

// RunRecord converts an outcome into history rows.
func RunRecord(cfg *models.Config, o *Outcome) (*db.Run, []db.RunEntity, []db.RunLink) {
	n := o.Network
	run := &db.Run{
		RunUUID:       o.RunUUID,
		Question:      o.Question.ID,
		Kind:          n.Kind.String(),
		InputPath:     cfg.Input,
		InputHash:     o.InputHash,
		TopN:          cfg.TopN,
		GroupMode:     n.Mode.String(),
		RecordCount:   n.RecordCount,
		EntityCount:   len(n.Counts),
		SelectedCount: len(n.Top),
		PairCount:     len(n.Pairs),
		ResultsDir:    o.Files.Dir,
	}

	entities := make([]db.RunEntity, len(n.Top))
	for i, e := range n.Top {
		entities[i] = db.RunEntity{Rank: i + 1, Name: e.Name, Group: n.GroupOf(e.Name), Count: e.Count}
	}

	links := make([]db.RunLink, len(n.Pairs))
	for i, p := range n.Pairs {
		links[i] = db.RunLink{Source: p.Source, Target: p.Target, Count: p.Count}
	}

	return run, entities, links
}

// RecordHistory stores outcomes in the run history database. The tables are
// already on disk at this point, so failures are logged and not returned.
func RecordHistory(cfg *models.Config, outcomes []*Outcome, logger *slog.Logger) {
	if cfg.NoHistory || len(outcomes) == 0 {
		return
	}

	database, err := db.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("Failed to open history database", "path", cfg.HistoryPath(), "error", err)
		return
	}
	defer database.Close()

	recordOutcomes(database, cfg, outcomes, logger.With("db", database.Path()))
}

func recordOutcomes(database *db.DB, cfg *models.Config, outcomes []*Outcome, logger *slog.Logger) {
	for _, o := range outcomes {
		run, entities, links := RunRecord(cfg, o)

		prev, err := database.FindRunByFingerprint(run.Question, run.InputHash, run.TopN, run.GroupMode)
		if err != nil {
			logger.Warn("Failed to look up previous run", "question", run.Question, "error", err)
		}
		o.Previous = prev

		if _, err := database.InsertRun(run, entities, links); err != nil {
			logger.Warn("Failed to record run", "question", run.Question, "error", err)
			continue
		}
		logger.Info("Recorded run", "question", run.Question, "run_id", run.RunID)
	}
}
