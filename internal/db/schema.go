package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY,
    model TEXT NOT NULL,
    endpoint TEXT,
    run_id TEXT,
    started_at TEXT,
    completed_at TEXT,
    total_prompts INTEGER,
    total_chars INTEGER,
    total_hits INTEGER,
    rate_per_1k REAL
);

CREATE TABLE IF NOT EXISTS samples (
    id INTEGER PRIMARY KEY,
    run_id INTEGER NOT NULL,
    prompt_index INTEGER NOT NULL,
    prompt TEXT,
    output TEXT,
    chars INTEGER,
    hits INTEGER,
    rate_per_1k REAL,
    error TEXT
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
