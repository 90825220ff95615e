package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"dsanotes/internal/db"
)

var (
	notesDesc = prometheus.NewDesc(
		"dsanotes_notes_total",
		"Number of published notes",
		nil, nil,
	)
	linksDesc = prometheus.NewDesc(
		"dsanotes_links_total",
		"Number of curated links",
		nil, nil,
	)
	usersDesc = prometheus.NewDesc(
		"dsanotes_users_total",
		"Number of identities with a progress record",
		nil, nil,
	)
	suggestionsDesc = prometheus.NewDesc(
		"dsanotes_suggestions_total",
		"Number of suggestions by status",
		[]string{"status"},
		nil,
	)

	resolutionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dsanotes_suggestion_resolutions_total",
			Help: "Suggestion resolutions by action",
		},
		[]string{"action"},
	)
)

// ContentCollector is a custom Prometheus collector that reads content
// counts from the database on each scrape.
type ContentCollector struct {
	db *db.DB
}

// Describe sends the metric descriptors to the channel.
func (c *ContentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- notesDesc
	ch <- linksDesc
	ch <- usersDesc
	ch <- suggestionsDesc
}

// Collect queries the database for content counts and emits them as gauges.
func (c *ContentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	if count, err := c.db.CountNotes(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(notesDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("failed to collect note metrics", "error", err)
	}

	if count, err := c.db.CountLinks(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(linksDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("failed to collect link metrics", "error", err)
	}

	if count, err := c.db.CountUsers(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(usersDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("failed to collect user metrics", "error", err)
	}

	counts, err := c.db.CountSuggestionsByStatus(ctx)
	if err != nil {
		slog.Error("failed to collect suggestion metrics", "error", err)
		return
	}
	for status, count := range counts {
		ch <- prometheus.MustNewConstMetric(suggestionsDesc, prometheus.GaugeValue, float64(count), status)
	}
}

var initOnce sync.Once

// Init registers the custom collector and the resolution counter.
// Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&ContentCollector{db: database})
		prometheus.MustRegister(resolutionCounter)
	})
}

// RecordResolution counts an approve or reject decision.
func RecordResolution(action string) {
	resolutionCounter.WithLabelValues(action).Inc()
}
