package fidibo

import (
	"context"
	"fmt"
)

// FetchSeatmap returns the raw seatmap document for a session. A
// transport failure is returned to the caller; a malformed body is
// treated as an absent document (nil, nil) and the session simply
// carries no availability summary.
func (c *Client) FetchSeatmap(ctx context.Context, sessionID int64) (*SeatmapDocument, error) {
	url := fmt.Sprintf("%s/bilito/api/client/v1/sessions/%d/seatmap", c.apiBase, sessionID)

	resp, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var doc SeatmapDocument
	if err := c.decodeJSON(resp, fmt.Sprintf("seatmap session_id=%d", sessionID), &doc); err != nil {
		return nil, nil
	}
	return &doc, nil
}
