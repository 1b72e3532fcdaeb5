package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/cooccur"
	"github.com/dtnitsch/cooccur-network/pkg/export"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

const (
	FileName = "summary.yaml"

	// previewSize bounds the top-entity and strongest-link lists.
	previewSize = 10
)

// RunInfo describes the run that produced a network.
type RunInfo struct {
	RunID       string
	Question    string
	Input       string
	InputSHA256 string
	TopN        int
	GeneratedAt time.Time
}

// Build assembles the manifest for a finished network.
func Build(info RunInfo, n *models.Network, files *export.Files) SummaryManifest {
	m := SummaryManifest{
		RunID:            info.RunID,
		GeneratedAt:      info.GeneratedAt.Format(time.RFC3339),
		Question:         info.Question,
		Kind:             n.Kind.String(),
		Input:            info.Input,
		InputSHA256:      info.InputSHA256,
		TopN:             info.TopN,
		GroupMode:        n.Mode.String(),
		Records:          n.RecordCount,
		DistinctEntities: len(n.Counts),
		Selected:         len(n.Top),
		Pairs:            len(n.Pairs),
	}

	for i, e := range n.Top {
		if i == previewSize {
			break
		}
		m.TopEntities = append(m.TopEntities, fmt.Sprintf("%s:%d", e.Name, e.Count))
	}

	for _, p := range cooccur.StrongestLinks(n.Pairs, previewSize) {
		m.StrongestLinks = append(m.StrongestLinks, LinkSummary{Source: p.Source, Target: p.Target, Count: p.Count})
	}

	if files != nil {
		m.Files = FileSummary{Links: files.Links, Points: files.Points}
	}

	return m
}

// GenerateSummary writes summary.yaml into dir and returns its path.
// Sizes of the exported tables are read from disk.
func GenerateSummary(info RunInfo, n *models.Network, files *export.Files, dir string, s *storage.Storage) (string, error) {
	m := Build(info, n, files)
	if files != nil {
		links, err := s.GetFileStats(files.Links)
		if err != nil {
			return "", fmt.Errorf("error reading links stats: %w", err)
		}
		points, err := s.GetFileStats(files.Points)
		if err != nil {
			return "", fmt.Errorf("error reading points stats: %w", err)
		}
		m.Files.LinksBytes = links.SizeBytes
		m.Files.PointsBytes = points.SizeBytes
	}

	manifestData, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	manifestPath := filepath.Join(dir, FileName)
	if err := s.SaveFile(manifestPath, manifestData); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
