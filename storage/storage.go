// Package storage provides SQLite-backed persistence for run history:
// per-generation population stats and tournament Elo standings, keyed by
// run id. It exists for post-hoc analysis; the training loop itself never
// reads from it.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the run-history store.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and
// applies the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// GenerationRecord is one generation's summary row.
type GenerationRecord struct {
	Generation      int
	BestFitness     float64
	AverageFitness  float64
	AverageNaive    float64
	Stagnant        bool
	DifficultyLevel int
	ScanMaxDist     float64
}

// EloRecord is one participant's final tournament standing.
type EloRecord struct {
	Name   string
	Rating float64
	Wins   int
	Losses int
}

// CreateRun registers a run id with its serialized configuration.
func (db *DB) CreateRun(id, startedAt, configJSON string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO runs (id, started_at, config_json) VALUES (?, ?, ?)`,
		id, startedAt, configJSON)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// InsertGeneration records one generation's stats for a run.
func (db *DB) InsertGeneration(runID string, rec GenerationRecord) error {
	stagnant := 0
	if rec.Stagnant {
		stagnant = 1
	}
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO generations
		 (run_id, generation, best_fitness, avg_fitness, avg_naive, stagnant, difficulty_level, scan_max_dist)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.Generation, rec.BestFitness, rec.AverageFitness, rec.AverageNaive,
		stagnant, rec.DifficultyLevel, rec.ScanMaxDist)
	if err != nil {
		return fmt.Errorf("insert generation %d: %w", rec.Generation, err)
	}
	return nil
}

// ListGenerations returns a run's generations in ascending order.
func (db *DB) ListGenerations(runID string) ([]GenerationRecord, error) {
	rows, err := db.conn.Query(
		`SELECT generation, best_fitness, avg_fitness, avg_naive, stagnant, difficulty_level, scan_max_dist
		 FROM generations WHERE run_id = ? ORDER BY generation`, runID)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		var stagnant int
		if err := rows.Scan(&rec.Generation, &rec.BestFitness, &rec.AverageFitness,
			&rec.AverageNaive, &stagnant, &rec.DifficultyLevel, &rec.ScanMaxDist); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		rec.Stagnant = stagnant != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveEloRatings replaces a run's tournament standings.
func (db *DB) SaveEloRatings(runID string, records []EloRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM elo_ratings WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("clear ratings: %w", err)
	}
	for _, r := range records {
		if _, err := tx.Exec(
			`INSERT INTO elo_ratings (run_id, name, rating, wins, losses) VALUES (?, ?, ?, ?, ?)`,
			runID, r.Name, r.Rating, r.Wins, r.Losses); err != nil {
			return fmt.Errorf("insert rating %s: %w", r.Name, err)
		}
	}
	return tx.Commit()
}

// ListEloRatings returns a run's standings, highest rating first.
func (db *DB) ListEloRatings(runID string) ([]EloRecord, error) {
	rows, err := db.conn.Query(
		`SELECT name, rating, wins, losses FROM elo_ratings WHERE run_id = ? ORDER BY rating DESC`, runID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var records []EloRecord
	for rows.Next() {
		var r EloRecord
		if err := rows.Scan(&r.Name, &r.Rating, &r.Wins, &r.Losses); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
