// Package api is a client for the portal's REST endpoints under /api/.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const csrfCookie = "csrftoken"

// Client talks to one portal. Authentication is the session cookie kept in
// the client's cookie jar.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a client for the portal at baseURL (e.g. https://edu.example.org)
func New(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/api/")
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// BaseURL returns the API root the client resolves paths against
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) csrfToken(u *url.URL) string {
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == csrfCookie {
			return ck.Value
		}
	}
	return ""
}

// send performs one request and returns the status and body of a 2xx
// response; anything else comes back as *Error.
func (c *Client) send(ctx context.Context, method, path string, in any) (int, []byte, error) {
	u := c.base.ResolveReference(&url.URL{Path: path})

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		if token := c.csrfToken(u); token != "" {
			req.Header.Set("X-CSRFToken", token)
		}
		req.Header.Set("Referer", c.base.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	log.Printf("API: %s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, data, parseError(resp.StatusCode, data)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	_, data, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// getList fetches a list endpoint that may answer with a bare array or a
// paginated {"count", "results"} envelope.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Results []T `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode list envelope: %w", err)
		}
		if envelope.Results == nil {
			return []T{}, nil
		}
		return envelope.Results, nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
