package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"dsanotes/internal/config"
	"dsanotes/internal/db"
	"dsanotes/internal/models"
	"dsanotes/internal/validation"
)

// LinkHandler handles curated link CRUD via JSON API. Links have no
// suggestion workflow; all mutations are admin only.
type LinkHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewLinkHandler creates a new API link handler.
func NewLinkHandler(database *db.DB, cfg *config.Config) *LinkHandler {
	return &LinkHandler{db: database, cfg: cfg}
}

// List returns all curated links grouped by category. Public.
func (h *LinkHandler) List(c fiber.Ctx) error {
	links, err := h.db.ListLinks(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch links")
	}

	if links == nil {
		links = []models.LinkItem{}
	}
	return jsonSuccess(c, links)
}

// Create creates a new curated link. Admin only.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	var link models.LinkItem
	if err := json.Unmarshal(c.Body(), &link); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg, valid := validation.ValidateLink(&link); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.CreateLink(c.Context(), &link); err != nil {
		if errors.Is(err, db.ErrDuplicateLinkID) {
			return jsonError(c, fiber.StatusConflict, "a link with this id already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create link")
	}

	return jsonSuccess(c, link)
}

// Update replaces a curated link. Admin only.
func (h *LinkHandler) Update(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	var link models.LinkItem
	if err := json.Unmarshal(c.Body(), &link); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	link.ID = c.Params("id")

	if msg, valid := validation.ValidateLink(&link); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.UpdateLink(c.Context(), &link); err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update link")
	}

	return jsonSuccess(c, link)
}

// Delete removes a curated link. Admin only.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	id := c.Params("id")
	if err := h.db.DeleteLink(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete link")
	}

	return jsonSuccess(c, models.DeleteResponse{DeletedID: id})
}

// Seed inserts the curated starter links from the seed file, skipping URLs
// that already exist. Admin only.
func (h *LinkHandler) Seed(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	seed, err := config.LoadSeedLinks(h.cfg.SeedLinksFile)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load seed file")
	}

	links := make([]models.LinkItem, 0, len(seed.Links))
	for _, s := range seed.Links {
		link := models.LinkItem{
			Title:      s.Title,
			URL:        s.URL,
			Category:   s.Category,
			Platform:   s.Platform,
			Difficulty: s.Difficulty,
		}
		if msg, valid := validation.ValidateLink(&link); !valid {
			return jsonError(c, fiber.StatusBadRequest, "invalid seed entry: "+msg)
		}
		links = append(links, link)
	}

	inserted, skipped, err := h.db.SeedLinks(c.Context(), links)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to seed links")
	}

	return jsonSuccess(c, models.SeedResponse{Inserted: inserted, Skipped: skipped})
}
