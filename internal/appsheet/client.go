// Package appsheet talks to the low-code backend's tabular-data API. The
// backend exposes one relevant operation: a table "Find" action returning
// the table's rows as JSON. Callers recover from any failure here with the
// built-in fallback sample; this package never invents data.
package appsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rdawsonsdp/appsheet/pkg/order"
)

const (
	defaultBaseURL = "https://api.appsheet.com/api/v2"
	defaultTimeout = 15 * time.Second

	accessKeyHeader = "ApplicationAccessKey"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient injects the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// Client issues Find actions against one application's tables.
type Client struct {
	baseURL   string
	appID     string
	accessKey string
	http      *http.Client
}

// New constructs a Client for the given application.
func New(appID, accessKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		appID:     appID,
		accessKey: accessKey,
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

type actionRequest struct {
	Action     string         `json:"Action"`
	Properties map[string]any `json:"Properties"`
	Rows       []any          `json:"Rows"`
}

// FindRows fetches every row of the named table.
func (c *Client) FindRows(ctx context.Context, table string) ([]order.Record, error) {
	if table == "" {
		return nil, fmt.Errorf("appsheet: table name is empty")
	}

	body, err := json.Marshal(actionRequest{
		Action:     "Find",
		Properties: map[string]any{"Locale": "en-US"},
		Rows:       []any{},
	})
	if err != nil {
		return nil, fmt.Errorf("appsheet: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/apps/%s/tables/%s/Action",
		c.baseURL, url.PathEscape(c.appID), url.PathEscape(table))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("appsheet: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessKeyHeader, c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appsheet: find %s: %w", table, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("appsheet: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("appsheet: find %s: unexpected status %d", table, resp.StatusCode)
	}

	records, err := order.DecodeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("appsheet: find %s: %w", table, err)
	}
	return records, nil
}
