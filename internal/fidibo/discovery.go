package fidibo

import (
	"context"
	"io"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

var (
	eventIDRe = regexp.MustCompile(`-(\d+)(?:\?.*)?$`)
	uuidRe    = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`)
)

// FetchPage returns the raw HTML of a page. Used for the home page
// (where a failure is fatal to the run) and individual show pages.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := c.get(ctx, pageURL, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DiscoverShowURLs collects every show link on the home page: anchors
// under /theater/ or /concert/ whose path ends with a numeric event id.
// The result is deduplicated and sorted so discovery order is stable.
func (c *Client) DiscoverShowURLs(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		if !strings.HasPrefix(href, "/theater/") && !strings.HasPrefix(href, "/concert/") {
			return
		}
		if !eventIDRe.MatchString(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		seen[base.ResolveReference(ref).String()] = struct{}{}
	})

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// ExtractEventID pulls the trailing numeric id out of a show URL.
func ExtractEventID(showURL string) (int64, bool) {
	m := eventIDRe.FindStringSubmatch(showURL)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ExtractTitle takes the first h1 text, then the og:title meta, then
// the fallback.
func ExtractTitle(html, fallback string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fallback
	}

	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return fallback
}

// ExtractEventUUID is a best-effort scan of the show page (markup and
// inline scripts alike) for the first well-formed UUID.
func ExtractEventUUID(html string) string {
	for _, m := range uuidRe.FindAllString(html, -1) {
		if _, err := uuid.Parse(m); err == nil {
			return strings.ToLower(m)
		}
	}
	return ""
}
