/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package ragclient is a thin client for the RAG backend's query endpoint.
// It obtains the response text and wall-clock latency that the evaluation
// engine consumes; it makes no quality decisions of its own.
package ragclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
)

// Mode selects how the backend answers a query.
type Mode string

const (
	// AssistantMode is the default conversational answer mode.
	AssistantMode Mode = "assistant"
	// DeepSearchMode trades latency for broader retrieval.
	DeepSearchMode Mode = "deep_search"
)

// Answer is one backend response plus the measured latency.
type Answer struct {
	Text    string
	Elapsed time.Duration
}

// Client talks to one RAG backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, e.g. to set an
// overall request timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// queryRequest is the wire format of POST /rag/query.
type queryRequest struct {
	Prompt         string `json:"prompt"`
	ProjectID      int    `json:"project_id"`
	AssistantMode  bool   `json:"assistant_mode"`
	DeepSearchMode bool   `json:"deep_search_mode"`
}

// queryResponse tolerates both field names the backend has used for the
// answer text.
type queryResponse struct {
	Answer   string `json:"answer"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Query sends one question to the backend and measures wall-clock latency.
func (c *Client) Query(ctx context.Context, projectID int, query string, mode Mode) (*Answer, error) {
	body, err := json.Marshal(queryRequest{
		Prompt:         query,
		ProjectID:      projectID,
		AssistantMode:  mode == AssistantMode,
		DeepSearchMode: mode == DeepSearchMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rag/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("query returned status %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("backend error: %s", out.Error)
	}

	text := out.Answer
	if text == "" {
		text = out.Response
	}
	return &Answer{Text: text, Elapsed: elapsed}, nil
}

// ragStatus is the wire format of GET /rags/{id}.
type ragStatus struct {
	Status        string `json:"status"`
	DocumentCount int    `json:"document_count"`
}

// WaitReady polls the backend until the project's index reports ready or
// the context expires. Expiry is logged, not fatal: a slow index is allowed
// to keep going while queries proceed.
func (c *Client) WaitReady(ctx context.Context, projectID int) {
	log := clog.FromContext(ctx)

	for {
		if ready := c.checkReady(ctx, projectID); ready {
			return
		}
		select {
		case <-ctx.Done():
			log.With("project_id", projectID).Warn("Project may not be fully indexed")
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (c *Client) checkReady(ctx context.Context, projectID int) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/rags/%d", c.baseURL, projectID), nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	var status ragStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false
	}
	if status.Status == "ready" || status.Status == "indexed" || status.DocumentCount > 0 {
		clog.FromContext(ctx).With("project_id", projectID, "documents", status.DocumentCount).
			Info("Project index ready")
		return true
	}
	return false
}
