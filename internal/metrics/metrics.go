package metrics

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"feedbackhub/internal/store"
)

var (
	feedbackTotalDesc = prometheus.NewDesc(
		"feedbackhub_feedback_total",
		"Total persisted feedback records by category",
		[]string{"category"},
		nil,
	)
	ratingAverageDesc = prometheus.NewDesc(
		"feedbackhub_rating_average",
		"Average star rating over rated feedback records",
		nil,
		nil,
	)
	ratedTotalDesc = prometheus.NewDesc(
		"feedbackhub_rated_feedback_total",
		"Number of feedback records that carry a star rating",
		nil,
		nil,
	)
)

// StoreCollector is a custom Prometheus collector that reads the feedback
// collection from the record store on each scrape.
type StoreCollector struct {
	store *store.Store
}

// Describe sends the metric descriptors to the channel.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- feedbackTotalDesc
	ch <- ratingAverageDesc
	ch <- ratedTotalDesc
}

// Collect loads all records and emits per-category totals and rating stats.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	records, err := c.store.Load()
	if err != nil {
		slog.Error("failed to collect feedback metrics", "error", err)
		return
	}

	byCategory := make(map[string]int)
	rated := 0
	ratingSum := 0
	for _, r := range records {
		byCategory[r.Category]++
		if r.HasRating() {
			rated++
			ratingSum += r.Rating
		}
	}

	for category, count := range byCategory {
		ch <- prometheus.MustNewConstMetric(
			feedbackTotalDesc,
			prometheus.GaugeValue,
			float64(count),
			category,
		)
	}

	ch <- prometheus.MustNewConstMetric(ratedTotalDesc, prometheus.GaugeValue, float64(rated))

	average := 0.0
	if rated > 0 {
		average = float64(ratingSum) / float64(rated)
	}
	ch <- prometheus.MustNewConstMetric(ratingAverageDesc, prometheus.GaugeValue, average)
}

var initOnce sync.Once

// Init registers the store collector. Must be called once at startup.
func Init(recordStore *store.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(&StoreCollector{store: recordStore})
	})
}
