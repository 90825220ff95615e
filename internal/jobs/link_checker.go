package jobs

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"dsanotes/internal/db"
	"dsanotes/internal/models"
	"dsanotes/internal/validation"
)

const checkBatchSize = 50

// LinkChecker performs background health checks on curated links so dead
// problem URLs surface in the UI instead of 404ing on students.
type LinkChecker struct {
	db       *db.DB
	interval time.Duration
	maxAge   time.Duration
	client   *http.Client
}

// NewLinkChecker creates a new link checker.
func NewLinkChecker(database *db.DB, interval, maxAge time.Duration) *LinkChecker {
	return &LinkChecker{
		db:       database,
		interval: interval,
		maxAge:   maxAge,
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the background health check loop.
func (l *LinkChecker) Start(ctx context.Context) {
	log.Printf("Link checker started (interval: %v, maxAge: %v)", l.interval, l.maxAge)

	// Run immediately on start
	l.checkStale(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Link checker stopped")
			return
		case <-ticker.C:
			l.checkStale(ctx)
		}
	}
}

func (l *LinkChecker) checkStale(ctx context.Context) {
	cutoff := time.Now().Add(-l.maxAge)
	links, err := l.db.GetStaleLinks(ctx, cutoff, checkBatchSize)
	if err != nil {
		log.Printf("Link checker: failed to fetch stale links: %v", err)
		return
	}

	for _, link := range links {
		if ctx.Err() != nil {
			return
		}

		status, errMsg := l.checkURL(ctx, link.URL)
		if err := l.db.UpdateLinkHealth(ctx, link.ID, status, errMsg); err != nil {
			log.Printf("Link checker: failed to record health for %s: %v", link.ID, err)
		}
	}
}

func (l *LinkChecker) checkURL(ctx context.Context, url string) (string, *string) {
	if valid, msg := validation.ValidateURL(url); !valid {
		return models.HealthUnhealthy, &msg
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		errMsg := "invalid URL: " + err.Error()
		return models.HealthUnhealthy, &errMsg
	}
	req.Header.Set("User-Agent", "DSANotes-LinkChecker/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		errMsg := "connection failed: " + err.Error()
		return models.HealthUnhealthy, &errMsg
	}
	defer resp.Body.Close()

	// Some judges reject HEAD; retry those with GET before declaring a
	// link dead.
	if resp.StatusCode == http.StatusMethodNotAllowed {
		return l.checkURLWithGet(ctx, url)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return models.HealthHealthy, nil
	}

	errMsg := "HTTP " + resp.Status
	return models.HealthUnhealthy, &errMsg
}

func (l *LinkChecker) checkURLWithGet(ctx context.Context, url string) (string, *string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		errMsg := "invalid URL: " + err.Error()
		return models.HealthUnhealthy, &errMsg
	}
	req.Header.Set("User-Agent", "DSANotes-LinkChecker/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		errMsg := "connection failed: " + err.Error()
		return models.HealthUnhealthy, &errMsg
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return models.HealthHealthy, nil
	}

	errMsg := "HTTP " + resp.Status
	return models.HealthUnhealthy, &errMsg
}
