package seats

import (
	"sort"

	"github.com/saeed-Underline/fidibo/internal/entity"
)

// Summarize classifies every seat in the index against the state
// mapping and rolls the result up into a SeatSummary. The state mapping
// is a lookup only: a seat id absent from it counts as available, state
// 3 as sold, state 4 as locked, anything else as other. Price stats are
// computed over available seats only. Pure function.
func Summarize(ix *Index, states map[int64]int) *entity.SeatSummary {
	summary := &entity.SeatSummary{
		TotalSeatsInMap: ix.Len(),
		UniquePrices:    []float64{},
	}

	var prices []float64
	for _, seat := range ix.Entries() {
		state, present := states[seat.SeatID]
		if !present {
			summary.AvailableSeats++
			if seat.Price != nil {
				prices = append(prices, *seat.Price)
			}
			if summary.Currency == "" && seat.Currency != "" {
				summary.Currency = seat.Currency
			}
			continue
		}

		switch state {
		case entity.StateSold:
			summary.SoldSeats++
		case entity.StateLocked:
			summary.LockedSeats++
		default:
			summary.OtherStateSeats++
		}
	}

	if len(prices) > 0 {
		sort.Float64s(prices)
		min, max := prices[0], prices[len(prices)-1]
		summary.MinPrice = &min
		summary.MaxPrice = &max
		summary.UniquePrices = dedupeSorted(prices)
	}
	return summary
}

func dedupeSorted(sorted []float64) []float64 {
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
