package service

import (
	"context"
	"sync"

	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/fidibo"
	"github.com/saeed-Underline/fidibo/internal/rating"
	"github.com/saeed-Underline/fidibo/internal/seats"
	"github.com/saeed-Underline/fidibo/pkg/metrics"

	"github.com/sirupsen/logrus"
)

type showService struct {
	client  Fetcher
	engine  *rating.Engine
	homeURL string
	workers int
}

// NewShowService creates a new instance of ShowService. workers bounds
// how many shows are processed at once; 1 gives strictly sequential
// behavior.
func NewShowService(client Fetcher, engine *rating.Engine, homeURL string, workers int) ShowService {
	if workers < 1 {
		workers = 1
	}
	return &showService{
		client:  client,
		engine:  engine,
		homeURL: homeURL,
		workers: workers,
	}
}

// Scrape runs one full pipeline pass. Only the home-page fetch is
// fatal; every per-show failure is contained in its Result and logged.
// The returned shows are ranked by shrunk score, descending, with
// discovery order preserved for exact ties.
func (s *showService) Scrape(ctx context.Context) ([]*entity.Show, error) {
	homeHTML, err := s.client.FetchPage(ctx, s.homeURL)
	if err != nil {
		metrics.ScrapeRuns.WithLabelValues("failed").Inc()
		return nil, err
	}

	urls := s.client.DiscoverShowURLs(homeHTML)
	logrus.Infof("Discovered %d show urls", len(urls))

	results := s.processAll(ctx, urls)

	shows := make([]*entity.Show, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			logrus.WithField("url", r.URL).Warnf("Skipping show: %v", r.Err)
			metrics.ShowsFailed.Inc()
			continue
		}
		if r.Show == nil {
			continue
		}
		shows = append(shows, r.Show)
	}
	metrics.ShowsCollected.Add(float64(len(shows)))

	RankShows(s.engine, shows)
	metrics.ScrapeRuns.WithLabelValues("ok").Inc()
	return shows, nil
}

// processAll fans the discovered urls out over the worker pool. Results
// land in slots indexed by discovery order, so the slice keeps that
// order regardless of which worker finishes first.
func (s *showService) processAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.processShow(ctx, urls[i])
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processShow builds the Show for one discovered URL. A nil Show with a
// nil Err means the show was excluded: no event id, or nothing left
// after dropping sold-out sessions. Exclusion short-circuits before any
// seatmap, seat-state, or score call is made.
func (s *showService) processShow(ctx context.Context, showURL string) Result {
	eventID, ok := fidibo.ExtractEventID(showURL)
	if !ok {
		return Result{URL: showURL}
	}

	showHTML, err := s.client.FetchPage(ctx, showURL)
	if err != nil {
		return Result{URL: showURL, Err: err}
	}
	title := fidibo.ExtractTitle(showHTML, showURL)

	sessions, err := s.client.FetchSessions(ctx, eventID)
	if err != nil {
		return Result{URL: showURL, Err: err}
	}

	sessions = FilterSoldOut(sessions)
	if len(sessions) == 0 {
		return Result{URL: showURL}
	}

	var score *entity.Score
	eventUUID := fidibo.ExtractEventUUID(showHTML)
	if eventUUID != "" {
		if score, err = s.client.FetchScore(ctx, eventUUID); err != nil {
			return Result{URL: showURL, Err: err}
		}
	}

	for i := range sessions {
		summary, err := s.buildSeatSummary(ctx, sessions[i].ID)
		if err != nil {
			return Result{URL: showURL, Err: err}
		}
		sessions[i].SeatSummary = summary
	}

	return Result{
		URL: showURL,
		Show: &entity.Show{
			Title:     title,
			URL:       showURL,
			EventID:   eventID,
			EventUUID: eventUUID,
			Sessions:  sessions,
			Score:     score,
		},
	}
}

// buildSeatSummary fetches the seatmap and seat states for a session
// and rolls them up. A nil summary with a nil error means the seatmap
// document was absent or empty; the session then carries no summary
// rather than a zero-filled one. A transport error skips the show.
func (s *showService) buildSeatSummary(ctx context.Context, sessionID int64) (*entity.SeatSummary, error) {
	doc, err := s.client.FetchSeatmap(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	ix := seats.BuildIndex(doc)
	if ix.Len() == 0 {
		return nil, nil
	}

	states := s.client.CollectSeatStates(ctx, sessionID)
	return seats.Summarize(ix, states), nil
}
