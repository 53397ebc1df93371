package entity

// Seat occupancy state codes reported by the seat-states endpoint.
// Anything else is bucketed as "other" and treated as unavailable.
const (
	StateSold   = 3
	StateLocked = 4
)

// SeatMapEntry is one seat from the static seatmap layout, with its
// location labels and price. Price is nil when the seatmap carries no
// numeric price for the seat.
type SeatMapEntry struct {
	SeatID      int64    `json:"seat_id"`
	DisplayName string   `json:"display_name"`
	Zone        string   `json:"zone"`
	Block       string   `json:"block"`
	Row         string   `json:"row"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
}

// SeatSummary is the per-session availability rollup computed from the
// seatmap index and the seat-state mapping. The four counts always add
// up to TotalSeatsInMap.
type SeatSummary struct {
	TotalSeatsInMap int       `json:"total_seats_in_map"`
	AvailableSeats  int       `json:"available_seats"`
	SoldSeats       int       `json:"sold_seats_state_3"`
	LockedSeats     int       `json:"locked_seats_state_4"`
	OtherStateSeats int       `json:"other_state_seats"`
	Currency        string    `json:"currency,omitempty"`
	MinPrice        *float64  `json:"available_min_price"`
	MaxPrice        *float64  `json:"available_max_price"`
	UniquePrices    []float64 `json:"available_unique_prices"`
}
