/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"time"
)

// settings holds the knobs shared by all judge backends. Each backend
// starts from its own defaults; options layer on top.
type settings struct {
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// Option configures a judge backend.
type Option func(*settings) error

// WithModel overrides the model name. Ignored by the plain HTTP backend,
// whose endpoint owns model selection.
func WithModel(model string) Option {
	return func(s *settings) error {
		if model == "" {
			return fmt.Errorf("model must not be empty")
		}
		s.model = model
		return nil
	}
}

// WithMaxTokens bounds the judge's output length.
func WithMaxTokens(tokens int64) Option {
	return func(s *settings) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		s.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature. Judges default to 0.1 so
// repeated judgments of the same response stay consistent.
func WithTemperature(temperature float64) Option {
	return func(s *settings) error {
		if temperature < 0 || temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g", temperature)
		}
		s.temperature = temperature
		return nil
	}
}

// WithTimeout bounds a single judging call, independent of the caller's
// overall deadline. On expiry the call returns an error and the evaluation
// proceeds without a judgment.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		s.timeout = timeout
		return nil
	}
}

// apply runs options over defaults, failing fast on a bad option.
func (s *settings) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return nil
}
