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

// linkColumns is the standard column list for link queries.
const linkColumns = `id, title, url, category, platform, difficulty,
	health_status, health_checked_at, health_error, created_at, updated_at`

// scanLink scans a row into a LinkItem struct.
func scanLink(row pgx.Row) (*models.LinkItem, error) {
	var link models.LinkItem
	err := row.Scan(
		&link.ID,
		&link.Title,
		&link.URL,
		&link.Category,
		&link.Platform,
		&link.Difficulty,
		&link.HealthStatus,
		&link.HealthCheckedAt,
		&link.HealthError,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks returns all curated links grouped by category.
func (d *DB) ListLinks(ctx context.Context) ([]models.LinkItem, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+linkColumns+` FROM links
		ORDER BY category ASC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.LinkItem
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

// GetLinkByID retrieves a link by its public string id.
func (d *DB) GetLinkByID(ctx context.Context, id string) (*models.LinkItem, error) {
	return scanLink(d.Pool.QueryRow(ctx, `
		SELECT `+linkColumns+` FROM links WHERE id = $1
	`, id))
}

// CreateLink inserts a new curated link, generating an id when omitted.
func (d *DB) CreateLink(ctx context.Context, link *models.LinkItem) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.Platform == "" {
		link.Platform = models.PlatformOther
	}

	err := d.Pool.QueryRow(ctx, `
		INSERT INTO links (id, title, url, category, platform, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING health_status, created_at, updated_at
	`,
		link.ID,
		link.Title,
		link.URL,
		link.Category,
		link.Platform,
		link.Difficulty,
	).Scan(&link.HealthStatus, &link.CreatedAt, &link.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLinkID
		}
		return err
	}
	return nil
}

// UpdateLink replaces a link's fields and resets its health status so the
// checker revisits the possibly-changed URL.
func (d *DB) UpdateLink(ctx context.Context, link *models.LinkItem) error {
	err := d.Pool.QueryRow(ctx, `
		UPDATE links
		SET title = $2, url = $3, category = $4, platform = $5, difficulty = $6,
			health_status = $7, health_checked_at = NULL, health_error = NULL,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`,
		link.ID,
		link.Title,
		link.URL,
		link.Category,
		link.Platform,
		link.Difficulty,
		models.HealthUnknown,
	).Scan(&link.CreatedAt, &link.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLinkNotFound
	}
	if err == nil {
		link.HealthStatus = models.HealthUnknown
		link.HealthCheckedAt = nil
		link.HealthError = nil
	}
	return err
}

// DeleteLink removes a link by id.
func (d *DB) DeleteLink(ctx context.Context, id string) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// SeedLinks inserts curated links, skipping URLs that already exist.
// Returns how many were inserted and how many were skipped.
func (d *DB) SeedLinks(ctx context.Context, links []models.LinkItem) (inserted, skipped int, err error) {
	for _, link := range links {
		if link.ID == "" {
			link.ID = uuid.NewString()
		}
		if link.Platform == "" {
			link.Platform = models.PlatformOther
		}

		result, err := d.Pool.Exec(ctx, `
			INSERT INTO links (id, title, url, category, platform, difficulty)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE NOT EXISTS (SELECT 1 FROM links WHERE url = $3)
		`, link.ID, link.Title, link.URL, link.Category, link.Platform, link.Difficulty)
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

// GetStaleLinks returns links whose health has not been checked since the
// cutoff, oldest check first.
func (d *DB) GetStaleLinks(ctx context.Context, olderThan time.Time, limit int) ([]models.LinkItem, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+linkColumns+` FROM links
		WHERE health_checked_at IS NULL OR health_checked_at < $1
		ORDER BY health_checked_at ASC NULLS FIRST
		LIMIT $2
	`, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.LinkItem
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

// UpdateLinkHealth records the outcome of a health check.
func (d *DB) UpdateLinkHealth(ctx context.Context, id, status string, healthErr *string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE links
		SET health_status = $2, health_checked_at = NOW(), health_error = $3
		WHERE id = $1
	`, id, status, healthErr)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// CountLinks returns the total number of curated links.
func (d *DB) CountLinks(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count)
	return count, err
}
