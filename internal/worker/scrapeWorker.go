package worker

import (
	"context"
	"time"

	"github.com/saeed-Underline/fidibo/internal/service"
	"github.com/saeed-Underline/fidibo/internal/transport"

	"github.com/sirupsen/logrus"
)

// ScrapeWorker runs the pipeline on a fixed interval in serve mode and
// pushes each finished snapshot to the delivery sinks and the HTTP
// handler. Runs do not overlap: the next tick waits for the loop body.
type ScrapeWorker struct {
	showService service.ShowService
	delivery    service.DeliveryService
	handler     *transport.ShowHandler
	interval    time.Duration
}

func NewScrapeWorker(
	showService service.ShowService,
	delivery service.DeliveryService,
	handler *transport.ShowHandler,
	interval time.Duration,
) *ScrapeWorker {
	return &ScrapeWorker{
		showService: showService,
		delivery:    delivery,
		handler:     handler,
		interval:    interval,
	}
}

func (w *ScrapeWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Scrape worker started")

	// first snapshot right away, then on the interval
	w.runScrape(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Scrape worker stopped")
			return
		case <-ticker.C:
			w.runScrape(ctx)
		}
	}
}

func (w *ScrapeWorker) runScrape(ctx context.Context) {
	logrus.Info("Starting scrape run")
	start := time.Now()

	shows, err := w.showService.Scrape(ctx)
	if err != nil {
		logrus.Errorf("Scrape run failed: %v", err)
		return
	}

	logrus.Infof("Scrape run completed: %d shows in %s", len(shows), time.Since(start).Round(time.Millisecond))

	if w.handler != nil {
		w.handler.SetSnapshot(shows)
	}
	if w.delivery != nil {
		if err := w.delivery.Deliver(shows); err != nil {
			logrus.Errorf("Snapshot delivery incomplete: %v", err)
		}
	}
}
