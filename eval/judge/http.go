/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

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

// generateRequest is the wire format of the text-generation endpoint.
type generateRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int64   `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// generateResponse is the endpoint's reply.
type generateResponse struct {
	Response string `json:"response"`
}

// httpJudge implements Interface against a plain text-generation endpoint,
// typically the RAG backend's own /llm/generate route so test runs stay
// self-contained.
type httpJudge struct {
	url      string
	client   *http.Client
	settings settings
}

// NewHTTP creates a judge that POSTs the judging prompt to the given URL.
func NewHTTP(url string, opts ...Option) (Interface, error) {
	if url == "" {
		return nil, fmt.Errorf("judge url must not be empty")
	}
	s := settings{
		maxTokens:   200,
		temperature: 0.1,
		timeout:     60 * time.Second,
	}
	if err := s.apply(opts); err != nil {
		return nil, err
	}
	return &httpJudge{
		url:      url,
		client:   &http.Client{},
		settings: s,
	}, nil
}

// Judge implements Interface.
func (h *httpJudge) Judge(ctx context.Context, request *Request) (string, error) {
	if err := request.Validate(); err != nil {
		return "", fmt.Errorf("invalid judge request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.settings.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Prompt:      buildPrompt(request),
		MaxTokens:   h.settings.maxTokens,
		Temperature: h.settings.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal judge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	clog.FromContext(ctx).With("judge_url", h.url).Debug("Requesting AI judgment")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("judge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("judge returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode judge response: %w", err)
	}
	return out.Response, nil
}
