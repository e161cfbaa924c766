// Package dnspod implements a minimal client for the DNSPod HTTP API.
// Only the Record.List operation is supported; that is all the monitor
// needs to observe the current state of a domain's records.
package dnspod

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production DNSPod API endpoint.
	DefaultBaseURL = "https://dnsapi.cn"

	userAgent      = "dnswatch/1.0"
	defaultTimeout = 5 * time.Second
)

// Client provides access to the DNSPod API.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

// NewClient creates a new API client. An empty baseURL selects the
// production endpoint. The token is a DNSPod login_token ("id,key").
func NewClient(baseURL, token string, httpClient *http.Client) (*Client, error) {
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
	return &Client{baseURL: u, token: token, http: httpClient}, nil
}

// ListRecords returns all records of the given domain.
//
// Network failures, non-2xx responses, malformed bodies and API-level
// error codes all surface as a single error; callers treat any of them
// as "fetch failed" and only log the detail.
func (c *Client) ListRecords(ctx context.Context, domain string) ([]Record, error) {
	form := url.Values{
		"login_token": {c.token},
		"domain":      {domain},
		"format":      {"json"},
	}

	endpoint := c.baseURL.JoinPath("Record.List")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dnspod: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("dnspod: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var out recordListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("dnspod: decode response: %w", err)
	}
	if out.Status.Code != "1" {
		return nil, fmt.Errorf("dnspod: api error %s: %s", out.Status.Code, out.Status.Message)
	}
	return out.Records, nil
}
