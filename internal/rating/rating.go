package rating

import "github.com/saeed-Underline/fidibo/internal/entity"

const (
	DefaultPriorMean   = 3.5
	DefaultPriorWeight = 20
)

// Engine shrinks raw rating averages toward a prior mean. PriorWeight
// acts as that many phantom votes at the prior mean, so low-sample
// averages collapse toward it while large vote counts dominate.
type Engine struct {
	PriorMean   float64
	PriorWeight int
}

func NewEngine(priorMean float64, priorWeight int) *Engine {
	return &Engine{PriorMean: priorMean, PriorWeight: priorWeight}
}

// Shrink returns the shrunk score for a raw average and vote count, or
// nil when the raw average is absent (an unrated show stays unrated).
func (e *Engine) Shrink(rawAverage *float64, votes int) *float64 {
	if rawAverage == nil {
		return nil
	}
	v := votes
	if v < 0 {
		v = 0
	}
	m := e.PriorWeight
	if m < 1 {
		m = 1
	}
	score := (float64(v)**rawAverage + float64(m)*e.PriorMean) / float64(v+m)
	return &score
}

// RankScore is the sort key for a show: 0.0 for shows with no score or
// no raw average, so unrated shows sort last.
func (e *Engine) RankScore(show *entity.Show) float64 {
	if show.Score == nil || show.Score.Average == nil {
		return 0.0
	}
	return *e.Shrink(show.Score.Average, show.Score.Count)
}
