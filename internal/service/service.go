package service

import (
	"context"

	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/fidibo"
)

// Fetcher is the upstream surface the show service depends on. The
// fidibo.Client satisfies it; tests substitute a stub.
type Fetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
	DiscoverShowURLs(html string) []string
	FetchSessions(ctx context.Context, eventID int64) ([]entity.Session, error)
	FetchScore(ctx context.Context, eventUUID string) (*entity.Score, error)
	FetchSeatmap(ctx context.Context, sessionID int64) (*fidibo.SeatmapDocument, error)
	CollectSeatStates(ctx context.Context, sessionID int64) map[int64]int
}

// ShowService runs the availability pipeline: discover shows, process
// each one, rank the survivors.
type ShowService interface {
	Scrape(ctx context.Context) ([]*entity.Show, error)
}

// Result is the outcome of processing one discovered show URL. Show and
// Err are both nil when the show was excluded (all sessions sold out or
// no event id in the URL).
type Result struct {
	URL  string
	Show *entity.Show
	Err  error
}
