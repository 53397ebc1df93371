package fidibo

import "encoding/json"

// Wire shapes of the Bilito API. Every endpoint wraps its payload in a
// data envelope with a result list.

type sessionsResponse struct {
	Data struct {
		Result []sessionRow `json:"result"`
	} `json:"data"`
}

type sessionRow struct {
	ID        int64  `json:"id"`
	WeekDay   string `json:"week_day"`
	Day       int    `json:"day"`
	Month     string `json:"month"`
	Time      string `json:"time"`
	IsSoldOut bool   `json:"is_sold_out"`
}

type scoreResponse struct {
	Data struct {
		Result []scoreRow `json:"result"`
	} `json:"data"`
}

type scoreRow struct {
	RatesAverage *float64 `json:"rates_average"`
	RatesCount   int      `json:"rates_count"`
	RepliesCount int      `json:"replies_count"`
	Rate1Count   int      `json:"rate_1_count"`
	Rate2Count   int      `json:"rate_2_count"`
	Rate3Count   int      `json:"rate_3_count"`
	Rate4Count   int      `json:"rate_4_count"`
	Rate5Count   int      `json:"rate_5_count"`
}

// SeatmapDocument is the seatmap endpoint payload. Only the first
// layout in Result is ever indexed.
type SeatmapDocument struct {
	Data struct {
		Result []SeatmapLayout `json:"result"`
	} `json:"data"`
}

type SeatmapLayout struct {
	Zones []SeatmapZone `json:"zones"`
}

type SeatmapZone struct {
	Name   string         `json:"name"`
	Blocks []SeatmapBlock `json:"blocks"`
}

type SeatmapBlock struct {
	Name string       `json:"name"`
	Rows []SeatmapRow `json:"rows"`
}

type SeatmapRow struct {
	Name  string        `json:"name"`
	Seats []SeatmapSeat `json:"seats"`
}

// SeatmapSeat keeps ID as a json.Number so a seat with a missing or
// non-integer identity can be skipped instead of failing the document.
type SeatmapSeat struct {
	ID          json.Number `json:"id"`
	DisplayName string      `json:"display_name"`
	Price       *float64    `json:"price"`
	Currency    string      `json:"currency"`
}

type seatStatesResponse struct {
	Data struct {
		Result []seatStateRow `json:"result"`
		Total  int            `json:"total"`
	} `json:"data"`
}

type seatStateRow struct {
	SeatID int64 `json:"seat_id"`
	State  int   `json:"state"`
}
