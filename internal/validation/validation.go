// Package validation checks note, suggestion, and link payloads at the API
// boundary so malformed shapes never reach storage.
package validation

import (
	"net/url"
	"strings"

	"dsanotes/internal/models"
)

// ValidateNoteContent checks the shared content fields of notes and
// suggestions. Returns ("", true) when valid, or a message for the caller.
func ValidateNoteContent(content *models.NoteContent) (string, bool) {
	if strings.TrimSpace(content.Title) == "" {
		return "title is required", false
	}
	if len(content.Title) > 300 {
		return "title must be 300 characters or fewer", false
	}

	switch content.Difficulty {
	case "":
		content.Difficulty = models.DifficultyMedium
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return "difficulty must be Easy, Medium, or Hard", false
	}

	for i := range content.Solutions {
		sol := &content.Solutions[i]
		if strings.TrimSpace(sol.Code) == "" {
			return "solution code is required", false
		}
		if sol.Language == "" {
			sol.Language = "python"
		}
	}

	for _, ex := range content.Examples {
		if strings.TrimSpace(ex.Input) == "" {
			return "example input is required", false
		}
	}

	return "", true
}

// ValidateLink checks a curated link payload, normalizing its platform.
func ValidateLink(link *models.LinkItem) (string, bool) {
	if strings.TrimSpace(link.Title) == "" {
		return "title is required", false
	}
	if strings.TrimSpace(link.Category) == "" {
		return "category is required", false
	}
	if link.Platform == "" {
		link.Platform = models.PlatformOther
	}
	if !models.KnownPlatform(link.Platform) {
		return "unknown platform", false
	}
	if valid, msg := ValidateURL(link.URL); !valid {
		return msg, false
	}
	return "", true
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https
// only). This prevents javascript:, data:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
