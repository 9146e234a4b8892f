/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
)

// Request is the context for one judging call.
type Request struct {
	// Query is the original question put to the RAG backend.
	Query string `json:"query"`

	// QueryType is the declared category of the query.
	QueryType string `json:"query_type"`

	// Response is the answer to evaluate.
	Response string `json:"response"`

	// DataContext optionally describes the underlying data so the judge
	// can check claims against it.
	DataContext string `json:"data_context,omitempty"`
}

// Validate checks the request has the required fields.
func (r *Request) Validate() error {
	if r.Query == "" {
		return errors.New("query is required")
	}
	if r.Response == "" {
		return errors.New("response is required")
	}
	return nil
}

// Interface is the contract for judge implementations. Judge returns the
// model's raw text; it does not retry, and a single timeout or transport
// failure surfaces as an error for the caller to degrade on.
type Interface interface {
	Judge(ctx context.Context, request *Request) (string, error)
}
