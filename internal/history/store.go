// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records generated ideas in a local SQLite database and
// exports them to YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/idea-generator/pkg/types"
)

const (
	dbFile            = "ideas.db"
	defaultMaxResults = 20

	// timeLayout is fixed width so created_at sorts chronologically as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages the idea history database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the history database at dir/ideas.db and
// creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ideas (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			difficulty TEXT,
			words TEXT,
			theme TEXT,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ideas_mode ON ideas(mode)`,
		`CREATE INDEX IF NOT EXISTS idx_ideas_created_at ON ideas(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores idea and returns it with ID and CreatedAt filled in when
// they were empty.
func (s *Store) Record(ctx context.Context, idea types.Idea) (types.Idea, error) {
	if idea.ID == "" {
		idea.ID = uuid.NewString()
	}
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now()
	}

	wordsJSON, err := json.Marshal(idea.Words)
	if err != nil {
		return types.Idea{}, fmt.Errorf("encoding words: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ideas (id, mode, difficulty, words, theme, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		idea.ID, string(idea.Mode), string(idea.Difficulty), string(wordsJSON),
		idea.Theme, idea.Text, idea.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return types.Idea{}, fmt.Errorf("inserting idea %s: %w", idea.ID, err)
	}
	return idea, nil
}

// QueryOptions filters List results.
type QueryOptions struct {
	// Mode filters by generation mode.
	Mode types.Mode

	// Difficulty filters by word tier.
	Difficulty types.Difficulty

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List returns recorded ideas, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Idea, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, mode, difficulty, words, theme, text, created_at FROM ideas WHERE 1=1`)
	if opts.Mode != "" {
		qb.WriteString(` AND mode = ?`)
		args = append(args, string(opts.Mode))
	}
	if opts.Difficulty != "" {
		qb.WriteString(` AND difficulty = ?`)
		args = append(args, string(opts.Difficulty))
	}
	qb.WriteString(` ORDER BY created_at DESC, rowid DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying ideas: %w", err)
	}
	defer rows.Close()

	var ideas []types.Idea
	for rows.Next() {
		var (
			idea                        types.Idea
			mode, difficulty, wordsJSON sql.NullString
			theme, createdAt            sql.NullString
		)
		if err := rows.Scan(&idea.ID, &mode, &difficulty, &wordsJSON, &theme, &idea.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning idea: %w", err)
		}
		idea.Mode = types.Mode(mode.String)
		idea.Difficulty = types.Difficulty(difficulty.String)
		idea.Theme = theme.String
		if wordsJSON.Valid && wordsJSON.String != "" && wordsJSON.String != "null" {
			if err := json.Unmarshal([]byte(wordsJSON.String), &idea.Words); err != nil {
				return nil, fmt.Errorf("decoding words for %s: %w", idea.ID, err)
			}
		}
		if createdAt.Valid {
			t, err := time.Parse(timeLayout, createdAt.String)
			if err != nil {
				// Rows written before the fixed-width layout.
				t, err = time.Parse(time.RFC3339Nano, createdAt.String)
			}
			if err != nil {
				return nil, fmt.Errorf("parsing created_at for %s: %w", idea.ID, err)
			}
			idea.CreatedAt = t
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ideas: %w", err)
	}
	return ideas, nil
}

// Count returns the number of recorded ideas.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM ideas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting ideas: %w", err)
	}
	return n, nil
}
