package service

import (
	"sort"

	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/rating"
)

// FilterSoldOut drops every session the upstream flagged as sold out.
// A show whose list comes back empty is excluded from the pipeline
// before any seat data is fetched.
func FilterSoldOut(sessions []entity.Session) []entity.Session {
	out := sessions[:0]
	for _, sess := range sessions {
		if !sess.IsSoldOut {
			out = append(out, sess)
		}
	}
	return out
}

// RankShows orders shows by shrunk score, descending, in place. The
// sort is stable so shows with exactly equal scores keep their
// discovery order.
func RankShows(engine *rating.Engine, shows []*entity.Show) {
	scores := make(map[*entity.Show]float64, len(shows))
	for _, show := range shows {
		scores[show] = engine.RankScore(show)
	}
	sort.SliceStable(shows, func(i, j int) bool {
		return scores[shows[i]] > scores[shows[j]]
	})
}
