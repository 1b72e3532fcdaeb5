package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per exported network
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    question TEXT NOT NULL,
    kind TEXT NOT NULL,
    input_path TEXT NOT NULL,
    input_hash TEXT NOT NULL,
    top_n INTEGER NOT NULL,
    group_mode TEXT NOT NULL,
    record_count INTEGER DEFAULT 0,
    entity_count INTEGER DEFAULT 0,
    selected_count INTEGER DEFAULT 0,
    pair_count INTEGER DEFAULT 0,
    results_dir TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_question ON runs(question);
CREATE INDEX IF NOT EXISTS idx_runs_fingerprint ON runs(question, input_hash, top_n, group_mode);

-- Run entities: the ranked points table of a run
CREATE TABLE IF NOT EXISTS run_entities (
    entity_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    rank INTEGER NOT NULL,
    name TEXT NOT NULL,
    grp TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, rank)
);

CREATE INDEX IF NOT EXISTS idx_run_entities_run ON run_entities(run_id);
CREATE INDEX IF NOT EXISTS idx_run_entities_name ON run_entities(name);

-- Run links: the links table of a run, in export order
CREATE TABLE IF NOT EXISTS run_links (
    link_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    source TEXT NOT NULL,
    target TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, source, target)
);

CREATE INDEX IF NOT EXISTS idx_run_links_run ON run_links(run_id);
`
