// Package export writes a network as the two flat tables consumed by graph
// visualization tools: links.csv (pair weights) and points.csv (node attributes).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/storage"
)

const (
	LinksFile  = "links.csv"
	PointsFile = "points.csv"

	countColumn = "Movies_Count"
)

// Files are the paths written for one network.
type Files struct {
	Dir    string `yaml:"dir"`
	Links  string `yaml:"links"`
	Points string `yaml:"points"`
}

// EncodeLinks writes the links table: Source,Target,Movies_Count, one row per pair.
func EncodeLinks(w io.Writer, pairs []models.PairCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Source", "Target", countColumn}); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := cw.Write([]string{p.Source, p.Target, strconv.Itoa(p.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodePoints writes the points table in rank order: <Kind>,Group,Movies_Count.
func EncodePoints(w io.Writer, n *models.Network) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{n.Kind.PointsLabel(), "Group", countColumn}); err != nil {
		return err
	}
	for _, e := range n.Top {
		if err := cw.Write([]string{e.Name, n.GroupOf(e.Name), strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNetwork creates dir if needed and writes both tables, overwriting old ones.
func WriteNetwork(s *storage.Storage, dir string, n *models.Network) (*Files, error) {
	if err := s.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	files := &Files{
		Dir:    dir,
		Links:  filepath.Join(dir, LinksFile),
		Points: filepath.Join(dir, PointsFile),
	}

	var links bytes.Buffer
	if err := EncodeLinks(&links, n.Pairs); err != nil {
		return nil, fmt.Errorf("failed to encode links: %w", err)
	}
	if err := s.SaveFile(files.Links, links.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", files.Links, err)
	}

	var points bytes.Buffer
	if err := EncodePoints(&points, n); err != nil {
		return nil, fmt.Errorf("failed to encode points: %w", err)
	}
	if err := s.SaveFile(files.Points, points.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", files.Points, err)
	}

	return files, nil
}
