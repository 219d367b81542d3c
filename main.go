// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/db"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/rcv"
	"github.com/danielhkuo/quickly-rank/report"
	"github.com/danielhkuo/quickly-rank/runner"
	"github.com/danielhkuo/quickly-rank/transform"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	// Round mode is validated by ParseFlags
	mode, err := rcv.ParseRoundMode(cfg.RoundMode)
	if err != nil {
		slog.Error("Error parsing round mode", "error", err)
		return 1
	}

	// Connect to the database only when persistence is requested
	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			return 1
		}
		defer conn.Close()

		if err := db.CreateSchema(conn); err != nil {
			slog.Error("schema creation failed", "error", err)
			return 1
		}
		slog.Info("Database schema ready")
	}

	exit := 0
	for _, file := range cfg.Files {
		races, err := loadRaces(file)
		if err != nil {
			slog.Error("failed to read ballots", "file", file, "error", err)
			exit = 1
			continue
		}

		for _, outcome := range runner.Run(races, mode, cfg.Workers) {
			if outcome.Err != nil {
				slog.Error("tabulation failed", "race", outcome.Metadata.RaceName, "error", outcome.Err)
				exit = 1
				continue
			}

			if cfg.Details {
				fmt.Println(report.Details(*outcome.Result))
			} else {
				fmt.Println(report.Summary(*outcome.Result))
			}

			if cfg.Flow {
				flow, err := json.Marshal(report.BuildFlowData(*outcome.Result, false))
				if err != nil {
					slog.Error("failed to encode vote flow", "race", outcome.Metadata.RaceName, "error", err)
					exit = 1
					continue
				}
				fmt.Println(string(flow))
			}

			if conn != nil {
				snapshot, err := db.SaveResult(conn, *outcome.Result)
				if err != nil {
					slog.Error("failed to save result", "race", outcome.Metadata.RaceName, "error", err)
					exit = 1
					continue
				}
				slog.Info("result saved", "race", snapshot.RaceName, "id", snapshot.ID)
			}
		}
	}

	return exit
}

func loadRaces(path string) ([]models.RaceData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return transform.ParseGoogleFormCSV(f)
}
