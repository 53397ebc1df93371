package fidibo

import (
	"context"
	"fmt"

	"github.com/saeed-Underline/fidibo/internal/entity"
)

// FetchScore returns the rating insight for an event UUID. A transport
// failure is returned to the caller; a malformed body or an empty
// result leaves the show unrated (nil, nil).
func (c *Client) FetchScore(ctx context.Context, eventUUID string) (*entity.Score, error) {
	url := fmt.Sprintf("%s/ratereview2/api/client/v1/opinions/entities/event/%s/insight", c.apiBase, eventUUID)

	resp, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var out scoreResponse
	if err := c.decodeJSON(resp, fmt.Sprintf("score event_uuid=%s", eventUUID), &out); err != nil {
		return nil, nil
	}
	if len(out.Data.Result) == 0 {
		return nil, nil
	}

	r0 := out.Data.Result[0]
	return &entity.Score{
		Average: r0.RatesAverage,
		Count:   r0.RatesCount,
		Replies: r0.RepliesCount,
		Breakdown: map[string]int{
			"rate_1": r0.Rate1Count,
			"rate_2": r0.Rate2Count,
			"rate_3": r0.Rate3Count,
			"rate_4": r0.Rate4Count,
			"rate_5": r0.Rate5Count,
		},
	}, nil
}
