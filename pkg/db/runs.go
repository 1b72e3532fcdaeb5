package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is one exported network.
type Run struct {
	RunID         int64
	RunUUID       string
	CreatedAt     time.Time
	Question      string
	Kind          string
	InputPath     string
	InputHash     string
	TopN          int
	GroupMode     string
	RecordCount   int
	EntityCount   int
	SelectedCount int
	PairCount     int
	ResultsDir    string
}

// RunEntity is one row of a run's points table.
type RunEntity struct {
	Rank  int
	Name  string
	Group string
	Count int
}

// RunLink is one row of a run's links table.
type RunLink struct {
	Source string
	Target string
	Count  int
}

const runColumns = `run_id, run_uuid, created_at, question, kind, input_path, input_hash,
	top_n, group_mode, record_count, entity_count, selected_count, pair_count, results_dir`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	err := row.Scan(&r.RunID, &r.RunUUID, &r.CreatedAt, &r.Question, &r.Kind, &r.InputPath,
		&r.InputHash, &r.TopN, &r.GroupMode, &r.RecordCount, &r.EntityCount,
		&r.SelectedCount, &r.PairCount, &r.ResultsDir)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertRun stores a run with its entities and links in one transaction
// and returns the new run_id.
func (db *DB) InsertRun(run *Run, entities []RunEntity, links []RunLink) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // No-op after commit

	result, err := tx.Exec(`
		INSERT INTO runs (run_uuid, question, kind, input_path, input_hash, top_n, group_mode,
		                  record_count, entity_count, selected_count, pair_count, results_dir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunUUID, run.Question, run.Kind, run.InputPath, run.InputHash, run.TopN, run.GroupMode,
		run.RecordCount, run.EntityCount, run.SelectedCount, run.PairCount, run.ResultsDir)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	entityStmt, err := tx.Prepare(`INSERT INTO run_entities (run_id, rank, name, grp, count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare entity insert: %w", err)
	}
	defer entityStmt.Close()

	for _, e := range entities {
		if _, err := entityStmt.Exec(runID, e.Rank, e.Name, e.Group, e.Count); err != nil {
			return 0, fmt.Errorf("failed to insert entity %q: %w", e.Name, err)
		}
	}

	linkStmt, err := tx.Prepare(`INSERT INTO run_links (run_id, source, target, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	for _, l := range links {
		if _, err := linkStmt.Exec(runID, l.Source, l.Target, l.Count); err != nil {
			return 0, fmt.Errorf("failed to insert link %q-%q: %w", l.Source, l.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	run.RunID = runID
	return runID, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY run_id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}

	return runs, rows.Err()
}

// GetLatestRunID returns the most recent run_id, or 0 if no runs are recorded.
func (db *DB) GetLatestRunID() (int64, error) {
	var runID sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(run_id) FROM runs`).Scan(&runID); err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID.Int64, nil
}

// GetRunByID retrieves a run by its ID.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	r, err := scanRun(db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// FindRunByFingerprint returns the latest run of question over the same input
// content and options, or nil if there is none.
func (db *DB) FindRunByFingerprint(question, inputHash string, topN int, groupMode string) (*Run, error) {
	r, err := scanRun(db.QueryRow(`
		SELECT `+runColumns+` FROM runs
		WHERE question = ? AND input_hash = ? AND top_n = ? AND group_mode = ?
		ORDER BY run_id DESC
		LIMIT 1
	`, question, inputHash, topN, groupMode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find run: %w", err)
	}
	return r, nil
}

// GetRunEntities returns a run's entities in rank order.
func (db *DB) GetRunEntities(runID int64) ([]RunEntity, error) {
	rows, err := db.Query(`
		SELECT rank, name, grp, count
		FROM run_entities
		WHERE run_id = ?
		ORDER BY rank
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run entities: %w", err)
	}
	defer rows.Close()

	var entities []RunEntity
	for rows.Next() {
		var e RunEntity
		if err := rows.Scan(&e.Rank, &e.Name, &e.Group, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan run entity: %w", err)
		}
		entities = append(entities, e)
	}

	return entities, rows.Err()
}

// GetRunLinks returns a run's links, strongest first; ties keep export order.
// limit <= 0 returns all.
func (db *DB) GetRunLinks(runID int64, limit int) ([]RunLink, error) {
	query := `
		SELECT source, target, count
		FROM run_links
		WHERE run_id = ?
		ORDER BY count DESC, link_id ASC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run links: %w", err)
	}
	defer rows.Close()

	var links []RunLink
	for rows.Next() {
		var l RunLink
		if err := rows.Scan(&l.Source, &l.Target, &l.Count); err != nil {
			return nil, fmt.Errorf("failed to scan run link: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}
