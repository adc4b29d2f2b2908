// Package storage provides SQLite-based persistence for generated mazes.
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

	"github.com/vovakirdan/mazegen/internal/config"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// ErrAmbiguousID is returned when an ID prefix matches more than one maze.
var ErrAmbiguousID = errors.New("storage: maze id prefix is ambiguous")

// Store manages the SQLite database connection for maze history.
type Store struct {
	db *sql.DB
}

// MazeRecord represents a single stored maze.
type MazeRecord struct {
	ID        int64
	MazeID    string
	Width     int
	Depth     int
	Seed      uint64
	StartX    int
	StartZ    int
	Walls     string // maze.Grid.Encode output
	Passages  int
	DeadEnds  int
	CreatedAt time.Time
}

// NewRecord builds a record for a generated grid.
func NewRecord(g *maze.Grid, seed uint64, start maze.Coord) MazeRecord {
	stats := maze.Summarize(g)
	return MazeRecord{
		Width:    g.Width(),
		Depth:    g.Depth(),
		Seed:     seed,
		StartX:   start.X,
		StartZ:   start.Z,
		Walls:    g.Encode(),
		Passages: stats.Passages,
		DeadEnds: stats.DeadEnds,
	}
}

// Grid decodes the stored walls.
func (r *MazeRecord) Grid() (*maze.Grid, error) {
	g, err := maze.Decode(r.Width, r.Depth, r.Walls)
	if err != nil {
		return nil, fmt.Errorf("storage: maze %s: %w", r.MazeID, err)
	}
	return g, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
		CREATE TABLE IF NOT EXISTS mazes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			depth INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			start_x INTEGER NOT NULL DEFAULT 0,
			start_z INTEGER NOT NULL DEFAULT 0,
			walls TEXT NOT NULL,
			passages INTEGER NOT NULL DEFAULT 0,
			dead_ends INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mazes_created ON mazes(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_mazes_size ON mazes(width, depth);
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

// SaveMaze records a maze. A MazeID is generated when the record has none.
// Returns the record as stored.
func (s *Store) SaveMaze(rec MazeRecord) (MazeRecord, error) {
	if rec.MazeID == "" {
		rec.MazeID = uuid.NewString()
	}

	// Seeds are unsigned; sqlite integers are signed. Store the bit pattern.
	result, err := s.db.Exec(
		`INSERT INTO mazes
		 (maze_id, width, depth, seed, start_x, start_z, walls, passages, dead_ends)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MazeID,
		rec.Width,
		rec.Depth,
		int64(rec.Seed),
		rec.StartX,
		rec.StartZ,
		rec.Walls,
		rec.Passages,
		rec.DeadEnds,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot save maze: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return rec, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id

	return rec, nil
}

const selectMaze = `SELECT id, maze_id, width, depth, seed, start_x, start_z,
		        walls, passages, dead_ends, created_at
		 FROM mazes`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMaze(row scanner) (MazeRecord, error) {
	var rec MazeRecord
	var seed int64
	var createdAt any

	if err := row.Scan(
		&rec.ID,
		&rec.MazeID,
		&rec.Width,
		&rec.Depth,
		&seed,
		&rec.StartX,
		&rec.StartZ,
		&rec.Walls,
		&rec.Passages,
		&rec.DeadEnds,
		&createdAt,
	); err != nil {
		return rec, err
	}
	rec.Seed = uint64(seed)
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

// MazeByID retrieves a maze by its full ID.
// Returns nil if no maze has that ID.
func (s *Store) MazeByID(mazeID string) (*MazeRecord, error) {
	rec, err := scanMaze(s.db.QueryRow(selectMaze+` WHERE maze_id = ?`, mazeID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maze: %w", err)
	}
	return &rec, nil
}

// FindMaze retrieves a maze by ID or unique ID prefix.
// Returns nil if nothing matches and ErrAmbiguousID if several do.
func (s *Store) FindMaze(prefix string) (*MazeRecord, error) {
	if prefix == "" {
		return nil, nil
	}

	rows, err := s.db.Query(selectMaze+` WHERE substr(maze_id, 1, ?) = ? LIMIT 2`, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maze: %w", err)
	}
	defer rows.Close()

	var found []MazeRecord
	for rows.Next() {
		rec, err := scanMaze(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		found = append(found, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, prefix)
	}
}

// RecentMazes retrieves the most recently generated mazes, newest first.
func (s *Store) RecentMazes(limit int) ([]MazeRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(selectMaze+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mazes: %w", err)
	}
	defer rows.Close()

	var records []MazeRecord
	for rows.Next() {
		rec, err := scanMaze(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteMaze deletes a maze by its full ID.
// Returns false if no maze had that ID.
func (s *Store) DeleteMaze(mazeID string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM mazes WHERE maze_id = ?", mazeID)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete maze: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// HistoryStats contains aggregated statistics over all stored mazes.
type HistoryStats struct {
	MazeCount     int
	TotalCells    int64
	LargestCells  int
	AvgDeadEnds   float64
	LastGenerated time.Time
}

// GetHistoryStats retrieves aggregated statistics for the maze history.
func (s *Store) GetHistoryStats() (*HistoryStats, error) {
	stats := &HistoryStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(width * depth), 0), COALESCE(MAX(width * depth), 0),
		        COALESCE(AVG(dead_ends), 0)
		 FROM mazes`,
	).Scan(&stats.MazeCount, &stats.TotalCells, &stats.LargestCells, &stats.AvgDeadEnds)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get history stats: %w", err)
	}

	// Get last generated
	var last any
	err = s.db.QueryRow(`SELECT created_at FROM mazes ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last generated: %w", err)
	}
	if err == nil {
		stats.LastGenerated = parseTime(last)
	}

	return stats, nil
}
