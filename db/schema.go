// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps and ids are set by the application so the same DDL works
// on both SQLite and PostgreSQL.
const schema = `
-- Race Results
CREATE TABLE IF NOT EXISTS race_result (
    id TEXT PRIMARY KEY,
    race_name TEXT NOT NULL,
    num_winners INTEGER NOT NULL,
    computed_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_race_result_race_name ON race_result(race_name);
`
