package models

import "time"

// Practice platforms for curated links.
const (
	PlatformSmartInterviews = "SmartInterviews"
	PlatformLeetCode        = "LeetCode"
	PlatformInterviewBit    = "InterviewBit"
	PlatformCodeforces      = "Codeforces"
	PlatformOther           = "Other"
)

// Link health status values maintained by the background checker.
const (
	HealthUnknown   = "unknown"
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// LinkItem is a curated external problem link grouped by category.
type LinkItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Category   string `json:"category"`
	Platform   string `json:"platform"`
	Difficulty string `json:"difficulty,omitempty"`

	HealthStatus    string     `json:"healthStatus"`
	HealthCheckedAt *time.Time `json:"healthCheckedAt,omitempty"`
	HealthError     *string    `json:"healthError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// KnownPlatform reports whether p is one of the recognised platforms.
func KnownPlatform(p string) bool {
	switch p {
	case PlatformSmartInterviews, PlatformLeetCode, PlatformInterviewBit, PlatformCodeforces, PlatformOther:
		return true
	}
	return false
}
