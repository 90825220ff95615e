package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"dsanotes/internal/models"
)

func createTestLink(t *testing.T, db *DB, title, url string) *models.LinkItem {
	t.Helper()

	link := &models.LinkItem{
		Title:    title,
		URL:      url,
		Category: "Arrays",
		Platform: models.PlatformLeetCode,
	}
	if err := db.CreateLink(context.Background(), link); err != nil {
		t.Fatalf("CreateLink() error = %v", err)
	}
	return link
}

func TestCreateLink(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	link := createTestLink(t, db, "Two Sum", "https://leetcode.com/problems/two-sum/")

	if link.ID == "" {
		t.Error("CreateLink() did not generate an ID")
	}
	if link.HealthStatus != models.HealthUnknown {
		t.Errorf("CreateLink() health = %q, want %q", link.HealthStatus, models.HealthUnknown)
	}
}

func TestCreateLink_DuplicateID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := &models.LinkItem{ID: "dup", Title: "First", URL: "https://example.com/1", Category: "Misc"}
	if err := db.CreateLink(ctx, first); err != nil {
		t.Fatalf("CreateLink() first link error = %v", err)
	}

	second := &models.LinkItem{ID: "dup", Title: "Second", URL: "https://example.com/2", Category: "Misc"}
	err := db.CreateLink(ctx, second)
	if !errors.Is(err, ErrDuplicateLinkID) {
		t.Errorf("CreateLink() error = %v, want ErrDuplicateLinkID", err)
	}
}

func TestUpdateLink_ResetsHealth(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	link := createTestLink(t, db, "Stale Check", "https://example.com/old")

	if err := db.UpdateLinkHealth(ctx, link.ID, models.HealthHealthy, nil); err != nil {
		t.Fatalf("UpdateLinkHealth() error = %v", err)
	}

	link.URL = "https://example.com/new"
	if err := db.UpdateLink(ctx, link); err != nil {
		t.Fatalf("UpdateLink() error = %v", err)
	}

	got, err := db.GetLinkByID(ctx, link.ID)
	if err != nil {
		t.Fatalf("GetLinkByID() error = %v", err)
	}
	if got.HealthStatus != models.HealthUnknown {
		t.Errorf("UpdateLink() health = %q, want %q", got.HealthStatus, models.HealthUnknown)
	}
	if got.HealthCheckedAt != nil {
		t.Errorf("UpdateLink() healthCheckedAt = %v, want nil", got.HealthCheckedAt)
	}
}

func TestUpdateLink_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	link := &models.LinkItem{ID: "missing", Title: "Ghost", URL: "https://example.com", Category: "Misc"}
	err := db.UpdateLink(context.Background(), link)
	if !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("UpdateLink() error = %v, want ErrLinkNotFound", err)
	}
}

func TestDeleteLink(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	link := createTestLink(t, db, "Short Lived", "https://example.com/gone")

	if err := db.DeleteLink(ctx, link.ID); err != nil {
		t.Fatalf("DeleteLink() error = %v", err)
	}
	if err := db.DeleteLink(ctx, link.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("DeleteLink() second delete error = %v, want ErrLinkNotFound", err)
	}
}

func TestSeedLinks_SkipsExistingURLs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	createTestLink(t, db, "Already Here", "https://leetcode.com/problems/two-sum/")

	seed := []models.LinkItem{
		{Title: "Two Sum", URL: "https://leetcode.com/problems/two-sum/", Category: "Arrays"},
		{Title: "Three Sum", URL: "https://leetcode.com/problems/3sum/", Category: "Arrays"},
	}

	inserted, skipped, err := db.SeedLinks(ctx, seed)
	if err != nil {
		t.Fatalf("SeedLinks() error = %v", err)
	}
	if inserted != 1 {
		t.Errorf("SeedLinks() inserted = %d, want 1", inserted)
	}
	if skipped != 1 {
		t.Errorf("SeedLinks() skipped = %d, want 1", skipped)
	}

	count, err := db.CountLinks(ctx)
	if err != nil {
		t.Fatalf("CountLinks() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountLinks() = %d, want 2", count)
	}
}

func TestGetStaleLinks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	unchecked := createTestLink(t, db, "Never Checked", "https://example.com/unchecked")
	fresh := createTestLink(t, db, "Just Checked", "https://example.com/fresh")

	if err := db.UpdateLinkHealth(ctx, fresh.ID, models.HealthHealthy, nil); err != nil {
		t.Fatalf("UpdateLinkHealth() error = %v", err)
	}

	stale, err := db.GetStaleLinks(ctx, time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("GetStaleLinks() error = %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("GetStaleLinks() returned %d links, want 1", len(stale))
	}
	if stale[0].ID != unchecked.ID {
		t.Errorf("GetStaleLinks() returned %q, want %q", stale[0].ID, unchecked.ID)
	}
}

func TestUpdateLinkHealth(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	link := createTestLink(t, db, "Dead Link", "https://example.com/404")

	errMsg := "HTTP 404 Not Found"
	if err := db.UpdateLinkHealth(ctx, link.ID, models.HealthUnhealthy, &errMsg); err != nil {
		t.Fatalf("UpdateLinkHealth() error = %v", err)
	}

	got, err := db.GetLinkByID(ctx, link.ID)
	if err != nil {
		t.Fatalf("GetLinkByID() error = %v", err)
	}
	if got.HealthStatus != models.HealthUnhealthy {
		t.Errorf("UpdateLinkHealth() status = %q, want %q", got.HealthStatus, models.HealthUnhealthy)
	}
	if got.HealthError == nil || *got.HealthError != errMsg {
		t.Errorf("UpdateLinkHealth() error message = %v, want %q", got.HealthError, errMsg)
	}
	if got.HealthCheckedAt == nil {
		t.Error("UpdateLinkHealth() did not set HealthCheckedAt")
	}
}
