// Package airtable is a minimal client for the record-store API that
// holds the authoritative copy of each company's operational records.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.airtable.com/v0"

// Client talks to the record store. API keys are per company and are
// passed per call, the way per-account access tokens are.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetBaseURL overrides the API endpoint (used in tests)
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Record is one raw record as returned by the record store: an opaque
// field map plus the store's own identifier.
type Record struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

// ListRecords fetches every record in the named table of a base. The
// API pages by offset token; callers always see the full current set.
func (c *Client) ListRecords(ctx context.Context, apiKey, baseID, table string) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		page, nextOffset, err := c.listPage(ctx, apiKey, baseID, table, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)

		if nextOffset == "" {
			return records, nil
		}
		offset = nextOffset
	}
}

func (c *Client) listPage(ctx context.Context, apiKey, baseID, table, offset string) ([]Record, string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(baseID), url.PathEscape(table))
	if offset != "" {
		endpoint += "?offset=" + url.QueryEscape(offset)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list records: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("record store error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp struct {
		Records []Record `json:"records"`
		Offset  string   `json:"offset"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, "", fmt.Errorf("failed to parse record list: %w", err)
	}

	return apiResp.Records, apiResp.Offset, nil
}
