// Package telegram provides a simple client for sending alerts via Telegram.
//
// It allows creating a client with a bot token and sending messages to specified chat IDs.
// Designed to be used as a notifier for marketplace tracking alerts.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents a Telegram client used to send alerts.
type Client struct {
	token  string       // bot token for authentication
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:  token,
		client: &http.Client{},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
// Link previews are disabled so that alert texts with product links stay
// compact in the chat.
type sendMessageRequest struct {
	ChatID         string `json:"chat_id"`
	Text           string `json:"text"`
	DisablePreview bool   `json:"disable_web_page_preview"`
}

// Send sends an alert message to the specified Telegram chat ID.
//
// It constructs the request payload, sends an HTTP POST to the Telegram Bot API,
// and returns an error if the request fails or the API responds with a non-200 status.
func (c *Client) Send(to string, msg string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", c.token)

	reqBody := sendMessageRequest{
		ChatID:         to,
		Text:           msg,
		DisablePreview: true,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
