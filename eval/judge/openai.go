/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
)

// openaiJudge implements Interface using the OpenAI Chat Completions API.
type openaiJudge struct {
	client   openai.Client
	settings settings
}

// NewOpenAI creates an OpenAI-backed judge.
func NewOpenAI(client openai.Client, opts ...Option) (Interface, error) {
	s := settings{
		model:       string(openai.ChatModelGPT4o),
		maxTokens:   1024,
		temperature: 0.1,
		timeout:     90 * time.Second,
	}
	if err := s.apply(opts); err != nil {
		return nil, err
	}
	return &openaiJudge{client: client, settings: s}, nil
}

// Judge implements Interface.
func (o *openaiJudge) Judge(ctx context.Context, request *Request) (string, error) {
	if err := request.Validate(); err != nil {
		return "", fmt.Errorf("invalid judge request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.settings.timeout)
	defer cancel()

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.settings.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(request)),
		},
		MaxTokens:   openai.Int(o.settings.maxTokens),
		Temperature: openai.Float(o.settings.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("judge request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("judge returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
