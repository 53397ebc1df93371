package entity

// Show is one bookable production with its surviving sessions and score.
// Field names mirror the snapshot JSON consumed downstream.
type Show struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	EventID   int64     `json:"event_id"`
	EventUUID string    `json:"event_uuid,omitempty"`
	Sessions  []Session `json:"sessions"`
	Score     *Score    `json:"score"`
}

// Session is a single scheduled performance. SeatSummary is attached
// after seat processing and stays nil when the seatmap was unavailable.
type Session struct {
	ID          int64        `json:"id"`
	WeekDay     string       `json:"week_day"`
	Day         int          `json:"day"`
	Month       string       `json:"month"`
	Time        string       `json:"time"`
	IsSoldOut   bool         `json:"is_sold_out"`
	SeatSummary *SeatSummary `json:"seat_summary"`
}

// Score holds the rating insight for a show. Average is nil for
// unrated shows.
type Score struct {
	Average   *float64       `json:"average"`
	Count     int            `json:"count"`
	Replies   int            `json:"replies"`
	Breakdown map[string]int `json:"breakdown"`
}
