// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-rank/models"
)

// Open connects to the database named by dbType ("sqlite" or
// "postgres") and verifies the connection with a ping.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case models.DBTypeSQLite:
		driver = "sqlite"
	case models.DBTypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unknown database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// SaveResult stores a tabulated race as an immutable snapshot and
// returns it. The full result is serialized into the payload column;
// race_name and num_winners are duplicated as queryable columns.
func SaveResult(db *sql.DB, result models.RaceResult) (models.ResultSnapshot, error) {
	snapshot := models.ResultSnapshot{
		ID:         uuid.NewString(),
		RaceName:   result.Metadata.RaceName,
		NumWinners: result.Metadata.NumWinners,
		ComputedAt: time.Now().UTC(),
		Result:     result,
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO race_result (id, race_name, num_winners, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5)`,
		snapshot.ID, snapshot.RaceName, snapshot.NumWinners, snapshot.ComputedAt, string(payload))
	if err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to save result: %w", err)
	}

	return snapshot, nil
}

// GetResult loads one snapshot by id. Returns sql.ErrNoRows when the
// id does not exist.
func GetResult(db *sql.DB, id string) (models.ResultSnapshot, error) {
	var snapshot models.ResultSnapshot
	var payload string

	err := db.QueryRow(`
		SELECT id, race_name, num_winners, computed_at, payload
		FROM race_result WHERE id = $1`, id).
		Scan(&snapshot.ID, &snapshot.RaceName, &snapshot.NumWinners, &snapshot.ComputedAt, &payload)
	if err != nil {
		return models.ResultSnapshot{}, err
	}

	if err := json.Unmarshal([]byte(payload), &snapshot.Result); err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to decode result payload: %w", err)
	}

	return snapshot, nil
}

// ListResults returns every snapshot for a race name, newest first.
// Payloads are not decoded; use GetResult for the full result.
func ListResults(db *sql.DB, raceName string) ([]models.ResultSnapshot, error) {
	rows, err := db.Query(`
		SELECT id, race_name, num_winners, computed_at
		FROM race_result WHERE race_name = $1
		ORDER BY computed_at DESC, id`, raceName)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var snapshots []models.ResultSnapshot
	for rows.Next() {
		var s models.ResultSnapshot
		if err := rows.Scan(&s.ID, &s.RaceName, &s.NumWinners, &s.ComputedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}
