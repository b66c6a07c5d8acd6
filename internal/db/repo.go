// Package db implements the optional Postgres transcript log.  When no
// database is configured the orchestrator simply runs without one; recording
// failures never affect replies.
package db

import (
	"context"
	"database/sql"

	"careline-chatbot/pkg"
)

// Repository wraps the transcript tables.  The caller owns the sql.DB
// lifecycle.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a Repository from an existing sql.DB.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// EnsureSession creates the session row if it does not exist yet.
func (r *Repository) EnsureSession(ctx context.Context, sessionID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sessions (id) VALUES ($1)
         ON CONFLICT (id) DO NOTHING`, sessionID)
	return err
}

// RecordTurn appends one message to a session's transcript, creating the
// session row on first use.
func (r *Repository) RecordTurn(ctx context.Context, sessionID string, role pkg.MessageRole, content string) error {
	if err := r.EnsureSession(ctx, sessionID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content)
         VALUES ($1, $2, $3)`, sessionID, role, content)
	return err
}

// GetTranscript returns a session's messages ordered by creation time.
func (r *Repository) GetTranscript(ctx context.Context, sessionID string) ([]pkg.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at
         FROM messages
         WHERE session_id = $1
         ORDER BY created_at ASC, id ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var transcript []pkg.Message
	for rows.Next() {
		var m pkg.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		transcript = append(transcript, m)
	}
	return transcript, rows.Err()
}
