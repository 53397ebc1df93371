package fidibo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// CollectSeatStates walks the paginated seat-states endpoint and merges
// every page into one seat_id -> state mapping. Collection is
// best-effort: a failed or malformed page ends the walk and the mapping
// accumulated so far is returned. A later page overwrites an earlier
// state for the same seat id.
func (c *Client) CollectSeatStates(ctx context.Context, sessionID int64) map[int64]int {
	states := make(map[int64]int)
	endpoint := fmt.Sprintf("%s/bilito/api/client/v1/sessions/%d/seats/states", c.apiBase, sessionID)

	limit := c.pageSize
	if limit <= 0 {
		limit = 50
	}

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("limit", strconv.Itoa(limit))

		resp, err := c.get(ctx, endpoint, params)
		if err != nil {
			return states
		}

		var out seatStatesResponse
		if err := c.decodeJSON(resp, fmt.Sprintf("seat_states session_id=%d page=%d", sessionID, page), &out); err != nil {
			return states
		}

		for _, row := range out.Data.Result {
			states[row.SeatID] = row.State
		}

		if page*limit >= out.Data.Total || len(out.Data.Result) == 0 {
			return states
		}
	}
}
