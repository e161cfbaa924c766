// Package notify implements the outbound notification channel. The
// monitor only needs "send this text, best effort"; Telegram is the one
// concrete implementation.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production Telegram Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

const defaultTimeout = 5 * time.Second

// Telegram sends messages through the Telegram Bot API.
type Telegram struct {
	baseURL *url.URL
	token   string
	chatID  string
	http    *http.Client
}

// NewTelegram creates a notifier for the given bot token and chat. An
// empty baseURL selects the production endpoint.
func NewTelegram(baseURL, token, chatID string, httpClient *http.Client) (*Telegram, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Telegram{baseURL: u, token: token, chatID: chatID, http: httpClient}, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Notify sends text as a Markdown-formatted message. Failures are
// returned for logging; the caller never retries.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	endpoint := t.baseURL.JoinPath("bot"+t.token, "sendMessage")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("telegram: %s: decode response: %w", resp.Status, err)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return fmt.Errorf("telegram: send failed: %s: %s", resp.Status, out.Description)
	}
	return nil
}
