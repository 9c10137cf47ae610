package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender delivers a short message to a destination (phone number or
// email address). Delivery is best-effort; callers must never let a
// send failure block a state transition.
type Sender interface {
	Send(ctx context.Context, destination, body string) error
}

// Client is an HTTP client for the messaging gateway.
type Client struct {
	gatewayURL string
	apiKey     string
	sender     string
	httpClient *http.Client
}

var _ Sender = (*Client)(nil)

// NewClient creates a new gateway client.
func NewClient(gatewayURL, apiKey, sender string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		sender:     sender,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetGatewayURL overrides the gateway URL for testing purposes.
func (c *Client) SetGatewayURL(url string) {
	c.gatewayURL = url
}

// Send posts one message to the gateway.
func (c *Client) Send(ctx context.Context, destination, body string) error {
	payload := sendRequest{
		To:     destination,
		Body:   body,
		Sender: c.sender,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/messages", bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("gateway rejected message: %s", apiResp.Description)
	}

	return nil
}
