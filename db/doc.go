// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists tabulated race results.

# Connections

Open dials the database named by type and URL and verifies it with a
ping. Two backends are supported:

  - sqlite (modernc.org/sqlite, pure Go, default)
  - postgres (github.com/lib/pq)

# Schema Creation

CreateSchema initializes the race_result table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes.

# Snapshots

Results are stored as immutable snapshots: SaveResult assigns a fresh
UUID and serializes the full round-by-round result into the payload
column, with race_name and num_winners duplicated for querying.
Re-tabulating a race inserts a new row rather than updating the old
one, so every historical run stays retrievable.

	snapshot, err := db.SaveResult(conn, result)
	...
	back, err := db.GetResult(conn, snapshot.ID)

ListResults enumerates the snapshots for one race name, newest first,
without decoding payloads.
*/
package db
