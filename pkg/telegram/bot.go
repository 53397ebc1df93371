package telegram

import (
	"fmt"
	"net/http"
	"net/url"
)

type Bot struct {
	token   string
	baseURL string
}

func NewBot(token string) *Bot {
	return &Bot{
		token:   token,
		baseURL: "https://api.telegram.org/bot" + token,
	}
}

func (b *Bot) SendMessage(chatID, text string) error {
	endpoint := b.baseURL + "/sendMessage"

	params := url.Values{}
	params.Add("chat_id", chatID)
	params.Add("text", text)
	params.Add("parse_mode", "HTML")
	params.Add("disable_web_page_preview", "true")

	resp, err := http.PostForm(endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}

// SendChunked delivers each chunk as an independent message, in order.
// The first failed send aborts the rest.
func (b *Bot) SendChunked(chatID string, chunks []string) error {
	for _, chunk := range chunks {
		if err := b.SendMessage(chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}
