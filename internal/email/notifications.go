package email

import (
	"context"
	"fmt"
	"log"

	"dsanotes/internal/config"
	"dsanotes/internal/models"
)

// Notifier sends moderation workflow notifications.
type Notifier struct {
	service *Service
	cfg     *config.Config
}

// NewNotifier creates a new notifier.
func NewNotifier(service *Service, cfg *config.Config) *Notifier {
	return &Notifier{service: service, cfg: cfg}
}

// NotifyAdminsSuggestionSubmitted emails the admin allow-list when a new
// suggestion lands in the review queue.
func (n *Notifier) NotifyAdminsSuggestionSubmitted(_ context.Context, s *models.Suggestion) {
	if !n.service.IsEnabled() || len(n.cfg.AdminEmails) == 0 {
		return
	}

	kind := "new note"
	if s.IsEdit() {
		kind = fmt.Sprintf("edit to note %q", s.OriginalID)
	}

	subject := fmt.Sprintf("[DSA Notes] Suggestion pending review: %s", s.Title)
	body := fmt.Sprintf(
		"A %s suggestion was submitted by %s.\n\nTitle: %s\nDescription: %s\n\nReview it in the admin dashboard: %s/admin\n",
		kind, s.SubmittedBy, s.Title, s.Description, n.cfg.BaseURL,
	)

	if err := n.service.SendEmail(n.cfg.AdminEmails, subject, body); err != nil {
		log.Printf("Failed to send suggestion notification: %v", err)
	}
}

// NotifySubmitterSuggestionResolved emails the suggestion's author about the
// decision. Anonymous submissions have nobody to notify.
func (n *Notifier) NotifySubmitterSuggestionResolved(_ context.Context, s *models.Suggestion, status string) {
	if !n.service.IsEnabled() || s.SubmittedBy == models.AnonymousSubmitter || s.SubmittedBy == "" {
		return
	}

	subject := fmt.Sprintf("[DSA Notes] Your suggestion was %s: %s", status, s.Title)
	body := fmt.Sprintf(
		"Your suggestion %q has been %s.\n\nThanks for contributing!\n",
		s.Title, status,
	)

	if err := n.service.SendEmail([]string{s.SubmittedBy}, subject, body); err != nil {
		log.Printf("Failed to send resolution notification: %v", err)
	}
}
