package fidibo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/saeed-Underline/fidibo/config"
	"github.com/saeed-Underline/fidibo/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// Client talks to the Fidibo marketing site and the Bilito booking API.
// One underlying http.Client is shared across all requests; it is safe
// for concurrent use by the worker pool.
type Client struct {
	http     *http.Client
	homeURL  string
	baseURL  string
	apiBase  string
	pageSize int
	headers  map[string]string
}

func NewClient(cfg *config.ScraperConfig) *Client {
	return &Client{
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		homeURL:  cfg.HomeURL,
		baseURL:  cfg.BaseURL,
		apiBase:  cfg.APIBaseURL,
		pageSize: cfg.SeatStatePage,
		headers: map[string]string{
			"User-Agent":      cfg.UserAgent,
			"Accept":          "text/html,application/json;q=0.9,*/*;q=0.8",
			"Accept-Language": "fa-IR,fa;q=0.9,en-US;q=0.7,en;q=0.6",
			"Origin":          "https://art.fidibo.com",
			"Referer":         "https://art.fidibo.com/",
		},
	}
}

// get performs a GET and treats any non-2xx status as an error.
func (c *Client) get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.FetchErrors.Inc()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status)
	}
	return resp, nil
}

// decodeJSON drains the response body into v. A body that is not
// well-formed JSON is logged with its context and reported as an error;
// callers treat the value as absent and degrade.
func (c *Client) decodeJSON(resp *http.Response, context string, v interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		preview := body
		if len(preview) > 200 {
			preview = preview[:200]
		}
		logrus.WithFields(logrus.Fields{
			"context":      context,
			"url":          resp.Request.URL.String(),
			"status":       resp.StatusCode,
			"content_type": resp.Header.Get("Content-Type"),
			"body":         string(preview),
		}).Warnf("JSON decode failed: %v", err)
		return err
	}
	return nil
}
