package rating

import (
	"testing"

	"github.com/saeed-Underline/fidibo/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func avg(v float64) *float64 {
	return &v
}

func TestShrink(t *testing.T) {
	engine := NewEngine(DefaultPriorMean, DefaultPriorWeight)

	tests := []struct {
		name  string
		raw   *float64
		votes int
		want  *float64
		delta float64
	}{
		{
			name:  "zero votes collapses to the prior",
			raw:   avg(5.0),
			votes: 0,
			want:  avg(3.5),
			delta: 0,
		},
		{
			name:  "large vote count dominates",
			raw:   avg(5.0),
			votes: 1980,
			want:  avg(5.0),
			delta: 0.02,
		},
		{
			name:  "absent average stays absent",
			raw:   nil,
			votes: 500,
			want:  nil,
		},
		{
			name:  "negative votes clamp to zero",
			raw:   avg(1.0),
			votes: -10,
			want:  avg(3.5),
			delta: 0,
		},
		{
			name:  "few votes shrink toward prior",
			raw:   avg(3.0),
			votes: 2,
			want:  avg((2*3.0 + 20*3.5) / 22),
			delta: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Shrink(tt.raw, tt.votes)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, tt.delta)
		})
	}
}

func TestShrinkClampsPriorWeight(t *testing.T) {
	engine := NewEngine(3.5, 0)

	// weight below one behaves as a single phantom vote
	got := engine.Shrink(avg(5.0), 0)
	require.NotNil(t, got)
	assert.Equal(t, 3.5, *got)

	got = engine.Shrink(avg(5.0), 1)
	require.NotNil(t, got)
	assert.InDelta(t, (5.0+3.5)/2, *got, 1e-9)
}

func TestRankScore(t *testing.T) {
	engine := NewEngine(DefaultPriorMean, DefaultPriorWeight)

	tests := []struct {
		name string
		show *entity.Show
		want float64
	}{
		{
			name: "no score sorts last",
			show: &entity.Show{},
			want: 0.0,
		},
		{
			name: "score without average sorts last",
			show: &entity.Show{Score: &entity.Score{Count: 100}},
			want: 0.0,
		},
		{
			name: "rated show gets its shrunk score",
			show: &entity.Show{Score: &entity.Score{Average: avg(5.0), Count: 0}},
			want: 3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.RankScore(tt.show), 1e-9)
		})
	}
}
