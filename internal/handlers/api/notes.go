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

// NoteHandler handles note CRUD operations via JSON API.
type NoteHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewNoteHandler creates a new API note handler.
func NewNoteHandler(database *db.DB, cfg *config.Config) *NoteHandler {
	return &NoteHandler{db: database, cfg: cfg}
}

// List returns all published notes, newest first. Public.
func (h *NoteHandler) List(c fiber.Ctx) error {
	notes, err := h.db.ListNotes(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch notes")
	}

	// Ensure a non-null array in JSON
	if notes == nil {
		notes = []models.Note{}
	}
	return jsonSuccess(c, notes)
}

// Get returns a single note by id. Public.
func (h *NoteHandler) Get(c fiber.Ctx) error {
	note, err := h.db.GetNoteByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch note")
	}
	return jsonSuccess(c, note)
}

// Create creates a new note. Admin only.
func (h *NoteHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	var note models.Note
	if err := json.Unmarshal(c.Body(), &note); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg, valid := validation.ValidateNoteContent(&note.NoteContent); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.CreateNote(c.Context(), &note); err != nil {
		if errors.Is(err, db.ErrDuplicateNoteID) {
			return jsonError(c, fiber.StatusConflict, "a note with this id already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create note")
	}

	return jsonSuccess(c, note)
}

// Update replaces a note's full document. Admin only.
func (h *NoteHandler) Update(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	var note models.Note
	if err := json.Unmarshal(c.Body(), &note); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	note.ID = c.Params("id")

	if msg, valid := validation.ValidateNoteContent(&note.NoteContent); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if err := h.db.UpdateNote(c.Context(), &note); err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update note")
	}

	return jsonSuccess(c, note)
}

// Delete removes a note. Admin only.
func (h *NoteHandler) Delete(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	id := c.Params("id")
	if err := h.db.DeleteNote(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete note")
	}

	return jsonSuccess(c, models.DeleteResponse{DeletedID: id})
}

// Seed inserts the starter notes from the seed file, skipping ids that are
// already present. Admin only.
func (h *NoteHandler) Seed(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	seed, err := config.LoadSeedNotes(h.cfg.SeedNotesFile)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load seed file")
	}

	notes := make([]models.Note, 0, len(seed.Notes))
	for _, s := range seed.Notes {
		note := models.Note{
			ID: s.ID,
			NoteContent: models.NoteContent{
				Title:           s.Title,
				Description:     s.Description,
				FullDescription: s.FullDescription,
				Difficulty:      s.Difficulty,
				Category:        s.Category,
				Tags:            s.Tags,
				Tips:            s.Tips,
			},
		}
		for _, e := range s.Examples {
			note.Examples = append(note.Examples, models.Example{
				Input:       e.Input,
				Output:      e.Output,
				Explanation: e.Explanation,
			})
		}
		for _, sol := range s.Solutions {
			note.Solutions = append(note.Solutions, models.Solution{
				Title:    sol.Title,
				Language: sol.Language,
				Code:     sol.Code,
				IsPseudo: sol.IsPseudo,
			})
		}
		if msg, valid := validation.ValidateNoteContent(&note.NoteContent); !valid {
			return jsonError(c, fiber.StatusBadRequest, "invalid seed entry: "+msg)
		}
		notes = append(notes, note)
	}

	inserted, skipped, err := h.db.SeedNotes(c.Context(), notes)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to seed notes")
	}

	return jsonSuccess(c, models.SeedResponse{Inserted: inserted, Skipped: skipped})
}

// MigrateDifficulty backfills the difficulty field from legacy tags. Admin only.
func (h *NoteHandler) MigrateDifficulty(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	updated, err := h.db.MigrateDifficulty(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to migrate difficulty")
	}

	return jsonSuccess(c, models.MigrateDifficultyResponse{Updated: int(updated)})
}
