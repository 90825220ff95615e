package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"dsanotes/internal/db"
	"dsanotes/internal/models"
)

// ProgressHandler handles per-user completion tracking via JSON API.
// Any authenticated identity may read and write its own progress.
type ProgressHandler struct {
	db *db.DB
}

// NewProgressHandler creates a new API progress handler.
func NewProgressHandler(database *db.DB) *ProgressHandler {
	return &ProgressHandler{db: database}
}

// Get returns the caller's completed note ids, creating an empty record on
// first access.
func (h *ProgressHandler) Get(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user.Email == "" {
		return jsonError(c, fiber.StatusUnauthorized, "authentication required")
	}

	progress, err := h.db.GetProgress(c.Context(), user.Email)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch progress")
	}

	completed := progress.CompletedNotes
	if completed == nil {
		completed = []string{}
	}
	return jsonSuccess(c, models.ProgressResponse{Completed: completed})
}

// SetCompletion marks a note complete or incomplete for the caller.
func (h *ProgressHandler) SetCompletion(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user.Email == "" {
		return jsonError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var body struct {
		NoteID    string `json:"noteId"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.NoteID == "" {
		return jsonError(c, fiber.StatusBadRequest, "noteId is required")
	}

	progress, err := h.db.SetCompletion(c.Context(), user.Email, body.NoteID, body.Completed)
	if err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update progress")
	}

	completed := progress.CompletedNotes
	if completed == nil {
		completed = []string{}
	}
	return jsonSuccess(c, models.ProgressResponse{Completed: completed})
}
