package digest

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/rating"
)

// Build renders the ranked show list as an HTML summary for the
// messaging channel: one block per show with its raw and shrunk score,
// a link, and every surviving session with seat and price info.
func Build(shows []*entity.Show, engine *rating.Engine) string {
	if len(shows) == 0 {
		return "هیچ سانس قابل خریدی پیدا نشد."
	}

	var lines []string
	lines = append(lines, "🎭 <b>Fidibo Art Summary</b>")
	lines = append(lines, fmt.Sprintf("✅ Shows with available sessions: <b>%d</b>", len(shows)))
	lines = append(lines, "")

	for i, show := range shows {
		scoreTxt := ""
		if show.Score != nil && show.Score.Average != nil {
			raw := *show.Score.Average
			votes := show.Score.Count
			bayes := *engine.Shrink(show.Score.Average, votes)
			scoreTxt = fmt.Sprintf(" ⭐ raw %.2f/5 (v=%d) | bayes %.2f/5", raw, votes, bayes)
		}

		lines = append(lines, fmt.Sprintf("%d. <b>%s</b>%s", i+1, html.EscapeString(show.Title), scoreTxt))
		lines = append(lines, fmt.Sprintf("  <a href=\"%s\">Open show</a>", show.URL))

		for _, sess := range show.Sessions {
			lines = append(lines, sessionLine(sess))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func sessionLine(sess entity.Session) string {
	seatTxt := ""
	if seat := sess.SeatSummary; seat != nil {
		seatTxt = fmt.Sprintf(" | 🪑 %d", seat.AvailableSeats)
		if seat.MinPrice != nil && seat.MaxPrice != nil {
			seatTxt += strings.TrimRight(
				fmt.Sprintf(" | 💰 %v-%v %s", *seat.MinPrice, *seat.MaxPrice, seat.Currency), " ")
		}
	}
	return fmt.Sprintf("    - %s %d %s %s%s", sess.WeekDay, sess.Day, sess.Month, sess.Time, seatTxt)
}

// SplitChunks breaks the digest into segments no longer than maxLen
// runes, splitting only on line boundaries. A single line longer than
// maxLen becomes its own chunk rather than being cut mid-line.
func SplitChunks(text string, maxLen int) []string {
	var chunks []string
	var buf []string
	size := 0

	for _, line := range strings.Split(text, "\n") {
		add := utf8.RuneCountInString(line) + 1
		if size+add > maxLen && len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, "\n"))
			buf = []string{line}
			size = add
		} else {
			buf = append(buf, line)
			size += add
		}
	}
	if len(buf) > 0 {
		chunks = append(chunks, strings.Join(buf, "\n"))
	}
	return chunks
}
