package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dsanotes/internal/models"
)

// noteColumns is the standard column list for note queries.
const noteColumns = `id, title, description, full_description, difficulty, category, date,
	tags, tips, complexity, examples, solutions, created_at, updated_at`

// scanNote scans a row into a Note struct.
func scanNote(row pgx.Row) (*models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Description,
		&note.FullDescription,
		&note.Difficulty,
		&note.Category,
		&note.Date,
		&note.Tags,
		&note.Tips,
		&note.Complexity,
		&note.Examples,
		&note.Solutions,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns all notes, newest study date first, creation time as a
// tie-breaker for notes without a date.
func (d *DB) ListNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+noteColumns+` FROM notes
		ORDER BY date DESC NULLS LAST, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

// GetNoteByID retrieves a note by its public string id.
func (d *DB) GetNoteByID(ctx context.Context, id string) (*models.Note, error) {
	return scanNote(d.Pool.QueryRow(ctx, `
		SELECT `+noteColumns+` FROM notes WHERE id = $1
	`, id))
}

// CreateNote inserts a new note, generating an id when the caller omitted one.
func (d *DB) CreateNote(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	err := d.Pool.QueryRow(ctx, `
		INSERT INTO notes (id, title, description, full_description, difficulty, category, date,
			tags, tips, complexity, examples, solutions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`,
		note.ID,
		note.Title,
		note.Description,
		note.FullDescription,
		note.Difficulty,
		note.Category,
		note.Date,
		note.Tags,
		note.Tips,
		note.Complexity,
		note.Examples,
		note.Solutions,
	).Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateNoteID
		}
		return err
	}
	return nil
}

// UpdateNote replaces the full document stored under the note's id.
func (d *DB) UpdateNote(ctx context.Context, note *models.Note) error {
	err := d.Pool.QueryRow(ctx, `
		UPDATE notes
		SET title = $2, description = $3, full_description = $4, difficulty = $5,
			category = $6, date = $7, tags = $8, tips = $9, complexity = $10,
			examples = $11, solutions = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`,
		note.ID,
		note.Title,
		note.Description,
		note.FullDescription,
		note.Difficulty,
		note.Category,
		note.Date,
		note.Tags,
		note.Tips,
		note.Complexity,
		note.Examples,
		note.Solutions,
	).Scan(&note.CreatedAt, &note.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoteNotFound
	}
	return err
}

// DeleteNote removes a note by id.
func (d *DB) DeleteNote(ctx context.Context, id string) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// SeedNotes inserts starter notes, skipping ids that already exist so that
// re-running the seed never touches notes an admin has since edited.
// Returns how many were inserted and how many were skipped.
func (d *DB) SeedNotes(ctx context.Context, notes []models.Note) (inserted, skipped int, err error) {
	for _, note := range notes {
		if note.ID == "" {
			note.ID = uuid.NewString()
		}

		result, err := d.Pool.Exec(ctx, `
			INSERT INTO notes (id, title, description, full_description, difficulty, category, date,
				tags, tips, complexity, examples, solutions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING
		`,
			note.ID,
			note.Title,
			note.Description,
			note.FullDescription,
			note.Difficulty,
			note.Category,
			note.Date,
			note.Tags,
			note.Tips,
			note.Complexity,
			note.Examples,
			note.Solutions,
		)
		if err != nil {
			return inserted, skipped, err
		}

		if result.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}
	return inserted, skipped, nil
}

// CountNotes returns the total number of published notes.
func (d *DB) CountNotes(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	return count, err
}

// MigrateDifficulty moves Easy/Medium/Hard tags into the difficulty field
// for notes imported before difficulty became a first-class field.
func (d *DB) MigrateDifficulty(ctx context.Context) (int64, error) {
	result, err := d.Pool.Exec(ctx, `
		UPDATE notes
		SET difficulty = (
				SELECT t FROM unnest(tags) AS t
				WHERE t IN ('Easy', 'Medium', 'Hard') LIMIT 1
			),
			tags = array_remove(array_remove(array_remove(tags, 'Easy'), 'Medium'), 'Hard'),
			updated_at = NOW()
		WHERE tags && ARRAY['Easy', 'Medium', 'Hard']
	`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
