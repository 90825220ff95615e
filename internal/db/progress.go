package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"dsanotes/internal/models"
)

// GetProgress returns the completed note ids for a user, creating an empty
// progress record on first access.
func (d *DB) GetProgress(ctx context.Context, email string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO user_progress (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING email, last_active
	`, email).Scan(&progress.Email, &progress.LastActive)
	if err != nil {
		return nil, err
	}

	completed, err := d.completedNotes(ctx, email)
	if err != nil {
		return nil, err
	}
	progress.CompletedNotes = completed
	return &progress, nil
}

// SetCompletion adds or removes a note from the user's completed set and
// bumps last_active. The membership table's primary key gives set semantics:
// marking the same note complete twice is a no-op, not a duplicate.
func (d *DB) SetCompletion(ctx context.Context, email, noteID string, completed bool) (*models.UserProgress, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var progress models.UserProgress
	err = tx.QueryRow(ctx, `
		INSERT INTO user_progress (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET last_active = NOW()
		RETURNING email, last_active
	`, email).Scan(&progress.Email, &progress.LastActive)
	if err != nil {
		return nil, err
	}

	if completed {
		_, err = tx.Exec(ctx, `
			INSERT INTO note_completions (email, note_id) VALUES ($1, $2)
			ON CONFLICT (email, note_id) DO NOTHING
		`, email, noteID)
	} else {
		_, err = tx.Exec(ctx, `
			DELETE FROM note_completions WHERE email = $1 AND note_id = $2
		`, email, noteID)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT note_id FROM note_completions WHERE email = $1 ORDER BY completed_at ASC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		progress.CompletedNotes = append(progress.CompletedNotes, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &progress, nil
}

// TouchProgress creates the user's progress record if needed and bumps
// last_active. Called on every successful sign-in.
func (d *DB) TouchProgress(ctx context.Context, email string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO user_progress (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET last_active = NOW()
	`, email)
	return err
}

// ListUsers returns the de facto user registry, most recently active first.
func (d *DB) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT email, last_active FROM user_progress ORDER BY last_active DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.Email, &u.LastActive); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountUsers returns how many identities have a progress record.
func (d *DB) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_progress`).Scan(&count)
	return count, err
}

func (d *DB) completedNotes(ctx context.Context, email string) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT note_id FROM note_completions WHERE email = $1 ORDER BY completed_at ASC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completed []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		completed = append(completed, id)
	}
	return completed, rows.Err()
}
