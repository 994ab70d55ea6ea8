// Package printer talks to a company's label printer service.
package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PrintLabelsRequest is the body accepted by the printer service.
type PrintLabelsRequest struct {
	URL      string `json:"url"`
	Quantity int    `json:"quantity"`
}

// Print asks the printer service at endpoint to print quantity copies
// of the label document at labelURL. The service signals acceptance
// with 202; anything else is a failure carrying the response body.
func (c *Client) Print(ctx context.Context, endpoint, labelURL string, quantity int) error {
	reqBody, err := json.Marshal(PrintLabelsRequest{
		URL:      labelURL,
		Quantity: quantity,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal print request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint+"/zebra", bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create print request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send print request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("printer error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
