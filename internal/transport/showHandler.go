package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/saeed-Underline/fidibo/internal/entity"

	"github.com/gin-gonic/gin"
)

// ShowHandler serves the latest ranked snapshot. The worker replaces
// the snapshot after every scrape; reads and writes are guarded since
// gin handlers run concurrently.
type ShowHandler struct {
	mu        sync.RWMutex
	shows     []*entity.Show
	updatedAt time.Time
}

func NewShowHandler() *ShowHandler {
	return &ShowHandler{}
}

// SetSnapshot swaps in the result of a completed scrape.
func (h *ShowHandler) SetSnapshot(shows []*entity.Show) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shows = shows
	h.updatedAt = time.Now()
}

func (h *ShowHandler) GetShows(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.updatedAt.IsZero() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated_at": h.updatedAt,
		"count":      len(h.shows),
		"shows":      h.shows,
	})
}
