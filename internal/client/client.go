// Package client is the bounded-timeout JSON consumer of the read endpoints,
// used by rendering code that composes pages from served content.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/starford/laguz/internal/apperr"
	"github.com/starford/laguz/internal/content"
)

// DefaultTimeout bounds every fetch when the caller's context carries no
// earlier deadline.
const DefaultTimeout = 15 * time.Second

// StatusError reports a non-2xx response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: unexpected status %d", e.Status)
}

// Client fetches typed content from the read API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (e.g. the site's public URL).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// GetJSON fetches path (plus optional query values) and decodes the response
// into v. Timeouts surface as apperr.ErrTimeout; 404 and 401 as
// apperr.ErrNotFound and apperr.ErrUnauthorized; other non-2xx responses as
// *StatusError. Nothing is retried here.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("client: %s: %w", path, apperr.ErrTimeout)
		}
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			return fmt.Errorf("client: %s: %w", path, apperr.ErrTimeout)
		}
		return fmt.Errorf("client: fetch %s: %w", path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("client: %s: %w", path, apperr.ErrNotFound)
	case res.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("client: %s: %w", path, apperr.ErrUnauthorized)
	case res.StatusCode < 200 || res.StatusCode > 299:
		return &StatusError{Status: res.StatusCode}
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("client: decode %s: %w", path, err)
	}
	return nil
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func (c *Client) Nav(ctx context.Context) (*content.Navigation, error) {
	var v content.Navigation
	if err := c.GetJSON(ctx, "/api/nav", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Footer(ctx context.Context) (*content.Footer, error) {
	var v content.Footer
	if err := c.GetJSON(ctx, "/api/footer", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Announcements(ctx context.Context, limit int) ([]content.Announcement, error) {
	var v []content.Announcement
	if err := c.GetJSON(ctx, "/api/announcements", limitQuery(limit), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) Announcement(ctx context.Context, slug string) (*content.Announcement, error) {
	var v content.Announcement
	if err := c.GetJSON(ctx, "/api/announcements/"+url.PathEscape(slug), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Events(ctx context.Context, limit int) ([]content.Event, error) {
	var v []content.Event
	if err := c.GetJSON(ctx, "/api/events", limitQuery(limit), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) Services(ctx context.Context) ([]content.Service, error) {
	var v []content.Service
	if err := c.GetJSON(ctx, "/api/services", nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) Service(ctx context.Context, slug string) (*content.Service, error) {
	var v content.Service
	if err := c.GetJSON(ctx, "/api/services/"+url.PathEscape(slug), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Agreements(ctx context.Context) ([]content.Agreement, error) {
	var v []content.Agreement
	if err := c.GetJSON(ctx, "/api/agreements", nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) Agreement(ctx context.Context, slug string) (*content.Agreement, error) {
	var v content.Agreement
	if err := c.GetJSON(ctx, "/api/agreements/"+url.PathEscape(slug), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) Attachments(ctx context.Context, q content.AttachmentQuery) (*content.AttachmentPage, error) {
	vals := url.Values{}
	if q.Category != "" {
		vals.Set("category", q.Category)
	}
	if q.Q != "" {
		vals.Set("q", q.Q)
	}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		vals.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	var v content.AttachmentPage
	if err := c.GetJSON(ctx, "/api/attachments", vals, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
