package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dsanotes/internal/models"
)

// suggestionColumns is the standard column list for suggestion queries.
const suggestionColumns = `suggestion_id, original_id, note_id, title, description,
	full_description, difficulty, category, date, tags, tips, complexity, examples,
	solutions, status, submitted_by, submitted_at, resolved_at`

// scanSuggestion scans a row into a Suggestion struct.
func scanSuggestion(row pgx.Row) (*models.Suggestion, error) {
	var (
		s          models.Suggestion
		originalID *string
		noteID     *string
	)
	err := row.Scan(
		&s.SuggestionID,
		&originalID,
		&noteID,
		&s.Title,
		&s.Description,
		&s.FullDescription,
		&s.Difficulty,
		&s.Category,
		&s.Date,
		&s.Tags,
		&s.Tips,
		&s.Complexity,
		&s.Examples,
		&s.Solutions,
		&s.Status,
		&s.SubmittedBy,
		&s.SubmittedAt,
		&s.ResolvedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSuggestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if originalID != nil {
		s.OriginalID = *originalID
	}
	if noteID != nil {
		s.NoteID = *noteID
	}
	return &s, nil
}

// CreateSuggestion inserts a new pending suggestion. The suggestion id is
// always generated server side; submitted_by defaults to Anonymous.
func (d *DB) CreateSuggestion(ctx context.Context, s *models.Suggestion) error {
	s.SuggestionID = uuid.NewString()
	if s.SubmittedBy == "" {
		s.SubmittedBy = models.AnonymousSubmitter
	}

	return d.Pool.QueryRow(ctx, `
		INSERT INTO suggestions (suggestion_id, original_id, note_id, title, description,
			full_description, difficulty, category, date, tags, tips, complexity,
			examples, solutions, submitted_by)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING status, submitted_at
	`,
		s.SuggestionID,
		s.OriginalID,
		s.NoteID,
		s.Title,
		s.Description,
		s.FullDescription,
		s.Difficulty,
		s.Category,
		s.Date,
		s.Tags,
		s.Tips,
		s.Complexity,
		s.Examples,
		s.Solutions,
		s.SubmittedBy,
	).Scan(&s.Status, &s.SubmittedAt)
}

// GetSuggestionByID retrieves a suggestion regardless of its status.
func (d *DB) GetSuggestionByID(ctx context.Context, suggestionID string) (*models.Suggestion, error) {
	return scanSuggestion(d.Pool.QueryRow(ctx, `
		SELECT `+suggestionColumns+` FROM suggestions WHERE suggestion_id = $1
	`, suggestionID))
}

// ListPendingSuggestions returns the pending projection, newest first.
// Approved and rejected suggestions stay in the table for audit but are
// never part of this view.
func (d *DB) ListPendingSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+suggestionColumns+` FROM suggestions
		WHERE status = $1
		ORDER BY submitted_at DESC
	`, models.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, *s)
	}
	return suggestions, rows.Err()
}

// ApproveSuggestion applies a pending suggestion to the notes table and marks
// it approved, all in one transaction. The pending-only row lock makes the
// transition safe under concurrent resolves: the loser of the race sees no
// pending row and gets ErrSuggestionNotFound instead of re-applying the edit.
//
// Only the NoteContent fields cross over to the notes table. For edits the
// target note's content is overwritten wholesale and its created_at is kept;
// if the target note was deleted in the meantime the approval recreates it
// rather than silently dropping the admin's decision. New proposals must
// land on a free id: the embedded noteId comes from the submission body, so
// colliding with a published note is ErrDuplicateNoteID, never an overwrite.
// A failed approval rolls back whole; the suggestion stays pending.
//
// Returns the id of the created or updated note.
func (d *DB) ApproveSuggestion(ctx context.Context, suggestionID string) (string, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	s, err := scanSuggestion(tx.QueryRow(ctx, `
		SELECT `+suggestionColumns+` FROM suggestions
		WHERE suggestion_id = $1 AND status = $2
		FOR UPDATE
	`, suggestionID, models.StatusPending))
	if err != nil {
		return "", err
	}

	targetID := s.TargetNoteID()
	if targetID == "" {
		targetID = uuid.NewString()
	}

	if s.IsEdit() {
		err = applyEdit(ctx, tx, targetID, s)
	} else {
		err = insertApprovedNote(ctx, tx, targetID, s)
	}
	if err != nil {
		return "", err
	}

	_, err = tx.Exec(ctx, `
		UPDATE suggestions SET status = $1, resolved_at = $2 WHERE suggestion_id = $3
	`, models.StatusApproved, time.Now(), suggestionID)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return targetID, nil
}

// applyEdit overwrites the target note's content, recreating the row when
// the note was deleted while the suggestion sat in the queue.
func applyEdit(ctx context.Context, tx pgx.Tx, targetID string, s *models.Suggestion) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notes (id, title, description, full_description, difficulty, category,
			date, tags, tips, complexity, examples, solutions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			full_description = EXCLUDED.full_description,
			difficulty = EXCLUDED.difficulty,
			category = EXCLUDED.category,
			date = EXCLUDED.date,
			tags = EXCLUDED.tags,
			tips = EXCLUDED.tips,
			complexity = EXCLUDED.complexity,
			examples = EXCLUDED.examples,
			solutions = EXCLUDED.solutions,
			updated_at = NOW()
	`,
		targetID,
		s.Title,
		s.Description,
		s.FullDescription,
		s.Difficulty,
		s.Category,
		s.Date,
		s.Tags,
		s.Tips,
		s.Complexity,
		s.Examples,
		s.Solutions,
	)
	return err
}

// insertApprovedNote creates the note for an approved new proposal. The id
// must be free; an occupied id is a conflict, not a take-over.
func insertApprovedNote(ctx context.Context, tx pgx.Tx, targetID string, s *models.Suggestion) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notes (id, title, description, full_description, difficulty, category,
			date, tags, tips, complexity, examples, solutions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		targetID,
		s.Title,
		s.Description,
		s.FullDescription,
		s.Difficulty,
		s.Category,
		s.Date,
		s.Tags,
		s.Tips,
		s.Complexity,
		s.Examples,
		s.Solutions,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateNoteID
		}
		return err
	}
	return nil
}

// RejectSuggestion marks a pending suggestion rejected. No note is touched.
// Resolving a terminal or unknown suggestion returns ErrSuggestionNotFound.
func (d *DB) RejectSuggestion(ctx context.Context, suggestionID string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE suggestions SET status = $1, resolved_at = $2
		WHERE suggestion_id = $3 AND status = $4
	`, models.StatusRejected, time.Now(), suggestionID, models.StatusPending)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrSuggestionNotFound
	}
	return nil
}

// CountSuggestionsByStatus returns suggestion counts grouped by status.
func (d *DB) CountSuggestionsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `SELECT status, COUNT(*) FROM suggestions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
