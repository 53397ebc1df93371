package fidibo

import (
	"context"
	"fmt"

	"github.com/saeed-Underline/fidibo/internal/entity"
)

// FetchSessions returns every session of an event, sold out or not.
// A transport failure is returned to the caller; a malformed body is
// treated as an empty session list.
func (c *Client) FetchSessions(ctx context.Context, eventID int64) ([]entity.Session, error) {
	url := fmt.Sprintf("%s/bilito/api/client/v1/events/%d/sessions", c.apiBase, eventID)

	resp, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var out sessionsResponse
	if err := c.decodeJSON(resp, fmt.Sprintf("sessions event_id=%d", eventID), &out); err != nil {
		return nil, nil
	}

	sessions := make([]entity.Session, 0, len(out.Data.Result))
	for _, r := range out.Data.Result {
		sessions = append(sessions, entity.Session{
			ID:        r.ID,
			WeekDay:   r.WeekDay,
			Day:       r.Day,
			Month:     r.Month,
			Time:      r.Time,
			IsSoldOut: r.IsSoldOut,
		})
	}
	return sessions, nil
}
