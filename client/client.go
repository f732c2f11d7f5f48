// Package client calls the TbankU REST API. Every function maps one request
// to one response: no retries and no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tbanku/tbanku-api/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Income() *Resource[models.Income] {
	return &Resource[models.Income]{c: c, resource: models.IncomeResource}
}

func (c *Client) Expenses() *Resource[models.Expense] {
	return &Resource[models.Expense]{c: c, resource: models.ExpenseResource}
}

func (c *Client) Assets() *Resource[models.Asset] {
	return &Resource[models.Asset]{c: c, resource: models.AssetResource}
}

func (c *Client) Properties() *Resource[models.Property] {
	return &Resource[models.Property]{c: c, resource: models.PropertyResource}
}

// Summary fetches the dashboard totals.
func (c *Client) Summary(ctx context.Context) (*models.Summary, error) {
	var s models.Summary
	if err := c.do(ctx, http.MethodGet, "/api/summary", nil, &s, "Failed to fetch summary"); err != nil {
		return nil, err
	}
	return &s, nil
}

// RawList returns the undecoded JSON array of a resource.
func (c *Client) RawList(ctx context.Context, resource string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/"+resource, nil, &raw, "Failed to fetch "+resource); err != nil {
		return nil, err
	}
	return raw, nil
}

// Resource wraps the four endpoints of one collection.
type Resource[T any] struct {
	c        *Client
	resource models.Resource
}

func (r *Resource[T]) path() string { return "/api/" + r.resource.Name }

func (r *Resource[T]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.path(), nil, &items, "Failed to fetch "+r.resource.Name); err != nil {
		return nil, err
	}
	return items, nil
}

// Add posts record; its ID is ignored and the stored record is returned.
func (r *Resource[T]) Add(ctx context.Context, record T) (T, error) {
	var created T
	err := r.c.do(ctx, http.MethodPost, r.path(), record, &created, "Failed to add "+r.resource.Name)
	return created, err
}

// Update replaces the stored record with the same ID.
func (r *Resource[T]) Update(ctx context.Context, record T) (T, error) {
	var updated T
	err := r.c.do(ctx, http.MethodPut, r.path(), record, &updated, "Failed to update "+r.resource.Name)
	return updated, err
}

func (r *Resource[T]) Delete(ctx context.Context, id models.ID) error {
	body := models.DeleteRequest{ID: id}
	return r.c.do(ctx, http.MethodDelete, r.path(), body, nil, "Failed to delete "+r.resource.Name)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, failure string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := failure
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
