package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Total scrape runs, by outcome
	ScrapeRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scraper_runs_total",
		Help: "Total number of scrape runs",
	}, []string{"status"})

	// Shows that made it into the ranked snapshot
	ShowsCollected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scraper_shows_collected_total",
		Help: "Total number of shows collected across all runs",
	})

	// Shows skipped because their processing failed
	ShowsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scraper_shows_failed_total",
		Help: "Total number of shows skipped due to processing errors",
	})

	// Upstream fetches that errored or returned a non-2xx status
	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scraper_fetch_errors_total",
		Help: "Total number of failed upstream fetches",
	})
)

func Init() {
	prometheus.MustRegister(
		ScrapeRuns,
		ShowsCollected,
		ShowsFailed,
		FetchErrors,
	)
}
