package network

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/cooccur-network/internal/common"
	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/cooccur"
	"github.com/dtnitsch/cooccur-network/pkg/dataset"
	"github.com/dtnitsch/cooccur-network/pkg/db"
	"github.com/dtnitsch/cooccur-network/pkg/export"
	"github.com/dtnitsch/cooccur-network/pkg/manifest"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

// Outcome is the result of building one question's network.
type Outcome struct {
	Question     models.Question
	RunUUID      string
	InputHash    string
	Network      *models.Network
	Files        *export.Files
	ManifestPath string

	// Previous is an earlier recorded run with the same input and options, if any.
	Previous *db.Run
}

// Pipeline loads the dataset, aggregates, and exports networks.
type Pipeline struct {
	Config  *models.Config
	Storage *storage.Storage
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewPipeline returns a pipeline writing through a plain storage layer.
func NewPipeline(cfg *models.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Config:  cfg,
		Storage: &storage.Storage{},
		Logger:  logger,
		Now:     time.Now,
	}
}

// Run builds the network for q and writes links.csv, points.csv and summary.yaml
// under the question's results directory.
func (p *Pipeline) Run(ctx context.Context, q models.Question) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q = q.Resolved()
	logger := p.Logger.With("question", q.ID, "kind", q.Kind.String())

	inputHash, err := common.HashFile(p.Config.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	logger.Info("Loading dataset", "input", p.Config.Input, "column", q.EntityColumn)
	records, err := dataset.Load(p.Storage, p.Config.Input, dataset.Columns{
		Entity:    q.EntityColumn,
		Attribute: q.AttributeColumn,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	network, err := cooccur.Aggregate(records, cooccur.OptionsFor(q, p.Config.TopN, p.Config.Labels))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", q.ID, err)
	}
	logger.Info("Aggregated network",
		"records", network.RecordCount,
		"entities", len(network.Counts),
		"selected", len(network.Top),
		"pairs", len(network.Pairs),
		"group_mode", network.Mode.String(),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := p.Config.QuestionDir(q.ID)
	files, err := export.WriteNetwork(p.Storage, dir, network)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Question:  q,
		RunUUID:   uuid.NewString(),
		InputHash: inputHash,
		Network:   network,
		Files:     files,
	}

	outcome.ManifestPath, err = manifest.GenerateSummary(manifest.RunInfo{
		RunID:       outcome.RunUUID,
		Question:    q.ID,
		Input:       p.Config.Input,
		InputSHA256: inputHash,
		TopN:        p.Config.TopN,
		GeneratedAt: p.Now(),
	}, network, files, dir, p.Storage)
	if err != nil {
		return nil, err
	}

	logger.Info("Wrote network", "dir", dir, "links", files.Links, "points", files.Points)
	return outcome, nil
}
