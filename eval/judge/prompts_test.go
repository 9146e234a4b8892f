/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"strings"
	"testing"
)

func TestBuildPromptTruncation(t *testing.T) {
	req := &Request{
		Query:       "q",
		QueryType:   "content_lookup",
		Response:    strings.Repeat("r", 4000),
		DataContext: strings.Repeat("c", 4000),
	}
	prompt := buildPrompt(req)

	if !strings.Contains(prompt, strings.Repeat("r", responsePromptCap)) {
		t.Error("prompt is missing the truncated response")
	}
	if strings.Contains(prompt, strings.Repeat("r", responsePromptCap+1)) {
		t.Errorf("prompt includes more than %d response chars", responsePromptCap)
	}
	if !strings.Contains(prompt, strings.Repeat("c", contextPromptCap)) {
		t.Error("prompt is missing the truncated data context")
	}
	if strings.Contains(prompt, strings.Repeat("c", contextPromptCap+1)) {
		t.Errorf("prompt includes more than %d context chars", contextPromptCap)
	}
}

func TestBuildPromptOmitsEmptyContext(t *testing.T) {
	prompt := buildPrompt(&Request{Query: "q", QueryType: "trend", Response: "r"})
	if strings.Contains(prompt, "DATA CONTEXT") {
		t.Error("prompt includes a DATA CONTEXT section for an empty context")
	}
}

func TestBuildPromptOutputContract(t *testing.T) {
	prompt := buildPrompt(&Request{Query: "q", QueryType: "trend", Response: "r"})
	// The judge is shown the exact shape it must return.
	if !strings.Contains(prompt, `{"accuracy": 8, "relevance": 9, "hallucinated": false, "logical": true, "issues": []}`) {
		t.Error("prompt is missing the literal JSON output example")
	}
	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Error("prompt is missing the JSON-only instruction")
	}
}
