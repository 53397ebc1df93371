package fidibo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/saeed-Underline/fidibo/config"

	"github.com/stretchr/testify/assert"
)

func testClient(apiBase string, pageSize int) *Client {
	return NewClient(&config.ScraperConfig{
		APIBaseURL:     apiBase,
		BaseURL:        "https://art.example.com/",
		RequestTimeout: 5 * time.Second,
		SeatStatePage:  pageSize,
		UserAgent:      "test-agent",
	})
}

type stateRecord struct {
	seatID int64
	state  int
}

// statesServer serves the record set paginated by the page/limit query
// params, the way the seat-states endpoint does.
func statesServer(t *testing.T, records []stateRecord, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests++
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		assert.GreaterOrEqual(t, page, 1)
		assert.Greater(t, limit, 0)

		start := (page - 1) * limit
		end := start + limit
		if start > len(records) {
			start = len(records)
		}
		if end > len(records) {
			end = len(records)
		}

		fmt.Fprint(w, `{"data":{"result":[`)
		for i, rec := range records[start:end] {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"seat_id":%d,"state":%d}`, rec.seatID, rec.state)
		}
		fmt.Fprintf(w, `],"total":%d}}`, len(records))
	}))
}

func TestCollectSeatStatesMergesAllPages(t *testing.T) {
	records := []stateRecord{
		{1, 3}, {2, 4}, {3, 1}, {4, 3}, {5, 4},
	}
	var requests int
	srv := statesServer(t, records, &requests)
	defer srv.Close()

	states := testClient(srv.URL, 2).CollectSeatStates(context.Background(), 9)

	assert.Equal(t, map[int64]int{1: 3, 2: 4, 3: 1, 4: 3, 5: 4}, states)
	assert.Equal(t, 3, requests)
}

func TestCollectSeatStatesSinglePage(t *testing.T) {
	var requests int
	srv := statesServer(t, []stateRecord{{1, 3}}, &requests)
	defer srv.Close()

	states := testClient(srv.URL, 50).CollectSeatStates(context.Background(), 9)

	assert.Equal(t, map[int64]int{1: 3}, states)
	assert.Equal(t, 1, requests)
}

func TestCollectSeatStatesEmptyResultStops(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// total promises more, but the page is empty
		fmt.Fprint(w, `{"data":{"result":[],"total":500}}`)
	}))
	defer srv.Close()

	states := testClient(srv.URL, 10).CollectSeatStates(context.Background(), 9)

	assert.Empty(t, states)
	assert.Equal(t, 1, requests)
}

func TestCollectSeatStatesPartialOnMidPaginationFailure(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page := r.URL.Query().Get("page")
		if page == "2" {
			fmt.Fprint(w, `<html>gateway error</html>`)
			return
		}
		fmt.Fprint(w, `{"data":{"result":[{"seat_id":1,"state":3},{"seat_id":2,"state":4}],"total":6}}`)
	}))
	defer srv.Close()

	states := testClient(srv.URL, 2).CollectSeatStates(context.Background(), 9)

	// page one survived, page two didn't, page three was never tried
	assert.Equal(t, map[int64]int{1: 3, 2: 4}, states)
	assert.Equal(t, 2, requests)
}

func TestCollectSeatStatesLastWriteWinsAcrossPages(t *testing.T) {
	records := []stateRecord{
		{7, 1}, {8, 3}, {7, 4}, {9, 3},
	}
	srv := statesServer(t, records, nil)
	defer srv.Close()

	states := testClient(srv.URL, 2).CollectSeatStates(context.Background(), 9)

	assert.Equal(t, map[int64]int{7: 4, 8: 3, 9: 3}, states)
}

func TestCollectSeatStatesPageSizeIndependent(t *testing.T) {
	records := []stateRecord{
		{1, 3}, {2, 4}, {3, 1}, {4, 3}, {5, 4}, {6, 9},
	}

	var maps []map[int64]int
	for _, pageSize := range []int{1, 2, 3, 6, 50} {
		srv := statesServer(t, records, nil)
		maps = append(maps, testClient(srv.URL, pageSize).CollectSeatStates(context.Background(), 9))
		srv.Close()
	}

	for _, m := range maps[1:] {
		assert.Equal(t, maps[0], m)
	}
}
