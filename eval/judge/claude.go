/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

// claudeJudge implements Interface using the Anthropic Messages API.
type claudeJudge struct {
	client   anthropic.Client
	settings settings
}

// NewClaude creates a Claude-backed judge.
func NewClaude(client anthropic.Client, opts ...Option) (Interface, error) {
	s := settings{
		model:       "claude-sonnet-4-5",
		maxTokens:   1024,
		temperature: 0.1,
		timeout:     90 * time.Second,
	}
	if err := s.apply(opts); err != nil {
		return nil, err
	}
	return &claudeJudge{client: client, settings: s}, nil
}

// Judge implements Interface.
func (c *claudeJudge) Judge(ctx context.Context, request *Request) (string, error) {
	if err := request.Validate(); err != nil {
		return "", fmt.Errorf("invalid judge request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.settings.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.settings.model),
		MaxTokens: c.settings.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(buildPrompt(request)),
			},
		}},
	}
	params.Temperature = anthropic.Float(c.settings.temperature)

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("judge request failed: %w", err)
	}

	var sb strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	return sb.String(), nil
}
