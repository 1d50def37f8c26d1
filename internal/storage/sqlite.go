// Package storage provides SQLite-based persistence for finished pong sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/config"
)

// DefaultPath is where the client keeps its history unless --db says otherwise.
const DefaultPath = "~/.pong/pong.db"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished playing session: from entering play to returning
// to the menu or quitting.
type Session struct {
	ID         int64
	SessionID  string // UUID shared with the session's log lines; generated when empty
	Player     string // "local" or the SSH user name
	Difficulty string
	Points     int // Rounds won by the human during the session
	CPUPoints  int // Rounds won by the computer during the session
	Rounds     int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Totals aggregates every stored session.
type Totals struct {
	Sessions   int
	Points     int
	CPUPoints  int
	Rounds     int
	PlayTime   time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			player_points INTEGER NOT NULL DEFAULT 0,
			computer_points INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.Points < 0 || sess.CPUPoints < 0 || sess.Rounds < 0 {
		return 0, fmt.Errorf("storage: cannot save session with negative counters: %+v", sess)
	}
	if sess.SessionID == "" {
		sess.SessionID = uuid.NewString()
	} else if err := uuid.Validate(sess.SessionID); err != nil {
		return 0, fmt.Errorf("storage: invalid session id %q: %w", sess.SessionID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, player, difficulty, player_points, computer_points, rounds, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.SessionID,
		sess.Player,
		sess.Difficulty,
		sess.Points,
		sess.CPUPoints,
		sess.Rounds,
		sess.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty player returns sessions of every player.
func (s *Store) RecentSessions(player string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, difficulty, player_points, computer_points, rounds, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.SessionID,
			&sess.Player,
			&sess.Difficulty,
			&sess.Points,
			&sess.CPUPoints,
			&sess.Rounds,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(durationMs) * time.Millisecond
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Totals aggregates the stored sessions of one player, or of everyone when
// player is empty.
func (s *Store) Totals(player string) (Totals, error) {
	var t Totals
	var durationMs int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(player_points), 0),
		        COALESCE(SUM(computer_points), 0),
		        COALESCE(SUM(rounds), 0),
		        COALESCE(SUM(duration_ms), 0),
		        MAX(created_at)
		 FROM sessions
		 WHERE ? = '' OR player = ?`,
		player, player,
	).Scan(&t.Sessions, &t.Points, &t.CPUPoints, &t.Rounds, &durationMs, &lastPlayed)
	if err != nil {
		return t, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.PlayTime = time.Duration(durationMs) * time.Millisecond
	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearSessions deletes the history of one player, or all of it when player is empty.
func (s *Store) ClearSessions(player string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR player = ?", player, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
