package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 8 << 20

// Client is a minimal JSON client for the recruitment REST backend.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do sends req and returns the raw response body of a 2xx reply.
// Non-2xx replies come back as *APIError with the parsed detail.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.BaseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", req.Method, req.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status: resp.StatusCode,
			Method: req.Method,
			Path:   req.Path,
			Detail: Detail(data),
		}
	}
	return data, nil
}

// Ping checks that the backend answers HTTP at all; any status counts.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// Get, Post, Put and Delete are shorthands used by the domain services.

func Get(ctx context.Context, api API, token, path string, query url.Values) ([]byte, error) {
	return api.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Token: token})
}

func Post(ctx context.Context, api API, token, path string, body any) ([]byte, error) {
	return api.Do(ctx, Request{Method: http.MethodPost, Path: path, Token: token, Body: body})
}

func Put(ctx context.Context, api API, token, path string, body any) ([]byte, error) {
	return api.Do(ctx, Request{Method: http.MethodPut, Path: path, Token: token, Body: body})
}

func Delete(ctx context.Context, api API, token, path string) error {
	_, err := api.Do(ctx, Request{Method: http.MethodDelete, Path: path, Token: token})
	return err
}
