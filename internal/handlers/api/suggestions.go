package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"dsanotes/internal/db"
	"dsanotes/internal/email"
	"dsanotes/internal/metrics"
	"dsanotes/internal/models"
	"dsanotes/internal/validation"
)

// SuggestionHandler handles the propose/review workflow via JSON API.
type SuggestionHandler struct {
	db       *db.DB
	notifier *email.Notifier
}

// NewSuggestionHandler creates a new API suggestion handler.
func NewSuggestionHandler(database *db.DB, notifier *email.Notifier) *SuggestionHandler {
	return &SuggestionHandler{db: database, notifier: notifier}
}

// Submit accepts a note-shaped proposal from any caller, signed in or not.
// The suggestion id, status, and timestamp are server-assigned; anything the
// caller sends for them is ignored.
func (h *SuggestionHandler) Submit(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	var suggestion models.Suggestion
	if err := json.Unmarshal(c.Body(), &suggestion); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg, valid := validation.ValidateNoteContent(&suggestion.NoteContent); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	suggestion.SubmittedBy = user.Identity()

	if err := h.db.CreateSuggestion(c.Context(), &suggestion); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create suggestion")
	}

	if h.notifier != nil {
		go h.notifier.NotifyAdminsSuggestionSubmitted(context.Background(), &suggestion)
	}

	return jsonSuccess(c, suggestion)
}

// ListPending returns all pending suggestions, newest first. Admin only.
func (h *SuggestionHandler) ListPending(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	suggestions, err := h.db.ListPendingSuggestions(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch suggestions")
	}

	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	return jsonSuccess(c, suggestions)
}

// Resolve approves or rejects a pending suggestion. Admin only. A suggestion
// that is already approved or rejected reports not found; resolution is a
// one-shot transition.
func (h *SuggestionHandler) Resolve(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok || !user.IsAdmin() {
		return jsonError(c, fiber.StatusForbidden, "admin access required")
	}

	suggestionID := c.Params("id")

	var body struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	switch body.Action {
	case models.ActionApprove:
		noteID, err := h.db.ApproveSuggestion(c.Context(), suggestionID)
		if err != nil {
			if errors.Is(err, db.ErrSuggestionNotFound) {
				return jsonError(c, fiber.StatusNotFound, "suggestion not found or already processed")
			}
			if errors.Is(err, db.ErrDuplicateNoteID) {
				return jsonError(c, fiber.StatusConflict, "a note with the proposed id already exists")
			}
			return jsonError(c, fiber.StatusInternalServerError, "failed to approve suggestion")
		}

		metrics.RecordResolution(models.ActionApprove)
		h.notifySubmitter(c, suggestionID, models.StatusApproved)

		return jsonSuccess(c, models.ResolveResponse{
			SuggestionID: suggestionID,
			Status:       models.StatusApproved,
			NoteID:       noteID,
		})

	case models.ActionReject:
		if err := h.db.RejectSuggestion(c.Context(), suggestionID); err != nil {
			if errors.Is(err, db.ErrSuggestionNotFound) {
				return jsonError(c, fiber.StatusNotFound, "suggestion not found or already processed")
			}
			return jsonError(c, fiber.StatusInternalServerError, "failed to reject suggestion")
		}

		metrics.RecordResolution(models.ActionReject)
		h.notifySubmitter(c, suggestionID, models.StatusRejected)

		return jsonSuccess(c, models.ResolveResponse{
			SuggestionID: suggestionID,
			Status:       models.StatusRejected,
		})

	default:
		return jsonError(c, fiber.StatusBadRequest, "action must be approve or reject")
	}
}

// notifySubmitter emails the suggestion's author about the decision,
// best effort.
func (h *SuggestionHandler) notifySubmitter(c fiber.Ctx, suggestionID, status string) {
	if h.notifier == nil {
		return
	}
	suggestion, err := h.db.GetSuggestionByID(c.Context(), suggestionID)
	if err != nil {
		return
	}
	go h.notifier.NotifySubmitterSuggestionResolved(context.Background(), suggestion, status)
}
