// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/region-arcade/internal/registry"
)

// End reasons recorded with a match.
const (
	EndReturn     = "return"     // the in-game return control
	EndQuit       = "quit"       // the host quit the program
	EndDisconnect = "disconnect" // the SSH session closed
	EndSim        = "sim"        // headless run finished
)

// ErrInconsistentTally is returned when a record's side counts do not add up.
var ErrInconsistentTally = errors.New("storage: red and blue cells do not sum to total")

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is the persisted summary of one match.
type MatchRecord struct {
	ID         int64
	MatchID    string
	GameID     string
	RedCells   int
	BlueCells  int
	TotalCells int
	Ticks      int64
	Duration   int // Duration in seconds
	EndReason  string
	CreatedAt  time.Time
}

// Winner returns "red", "blue" or "draw" by cell count.
func (r MatchRecord) Winner() string {
	switch {
	case r.RedCells > r.BlueCells:
		return "red"
	case r.BlueCells > r.RedCells:
		return "blue"
	default:
		return "draw"
	}
}

// RecordFromSummary builds a record from a game's final summary.
func RecordFromSummary(sum registry.MatchSummary, duration time.Duration, reason string) MatchRecord {
	return MatchRecord{
		GameID:     sum.GameID,
		RedCells:   sum.Tallies["red"],
		BlueCells:  sum.Tallies["blue"],
		TotalCells: sum.Total,
		Ticks:      int64(sum.Ticks), //#nosec G115 -- tick count fits in int64
		Duration:   int(duration.Seconds()),
		EndReason:  reason,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			red_cells INTEGER NOT NULL DEFAULT 0,
			blue_cells INTEGER NOT NULL DEFAULT 0,
			total_cells INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. A missing MatchID is generated.
// Returns the match ID.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	if rec.RedCells+rec.BlueCells != rec.TotalCells {
		return "", fmt.Errorf("%w: %d + %d != %d", ErrInconsistentTally, rec.RedCells, rec.BlueCells, rec.TotalCells)
	}
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		   (match_id, game_id, red_cells, blue_cells, total_cells, ticks, duration_secs, end_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.GameID, rec.RedCells, rec.BlueCells, rec.TotalCells,
		rec.Ticks, rec.Duration, rec.EndReason, rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return rec.MatchID, nil
}

// SaveSummary records a game's final summary.
func (s *Store) SaveSummary(sum registry.MatchSummary, duration time.Duration, reason string) (string, error) {
	return s.SaveMatch(RecordFromSummary(sum, duration, reason))
}

const matchColumns = `id, match_id, game_id, red_cells, blue_cells, total_cells,
	ticks, duration_secs, end_reason, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.GameID,
		&rec.RedCells,
		&rec.BlueCells,
		&rec.TotalCells,
		&rec.Ticks,
		&rec.Duration,
		&rec.EndReason,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	rec, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameMatches retrieves the most recent matches of one game, newest first.
func (s *Store) GameMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearMatches removes all matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	MatchesCount int
	RedWins      int
	BlueWins     int
	Draws        int
	AvgRed       float64
	AvgBlue      float64
	TotalTicks   int64
	LastPlayed   time.Time
}

// Stats retrieves statistics for every game that has been played.
func (s *Store) Stats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id,
		        COUNT(*),
		        SUM(CASE WHEN red_cells > blue_cells THEN 1 ELSE 0 END),
		        SUM(CASE WHEN blue_cells > red_cells THEN 1 ELSE 0 END),
		        SUM(CASE WHEN red_cells = blue_cells THEN 1 ELSE 0 END),
		        AVG(red_cells), AVG(blue_cells), SUM(ticks), MAX(created_at)
		 FROM matches
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.MatchesCount, &gs.RedWins, &gs.BlueWins, &gs.Draws,
			&gs.AvgRed, &gs.AvgBlue, &gs.TotalTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
