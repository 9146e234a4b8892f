/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"strings"
)

// Prompt-side truncation caps. These are independent of the storage cap on
// evaluation results; the judge sees at most this much of each input.
const (
	responsePromptCap = 1500
	contextPromptCap  = 800
)

// buildPrompt renders the judging prompt. It asks for a single-line JSON
// object and shows the exact output shape; the extractor still tolerates
// models that ignore the instruction.
func buildPrompt(req *Request) string {
	var sb strings.Builder

	sb.WriteString("You are evaluating a data analysis response for accuracy.\n\n")
	fmt.Fprintf(&sb, "ORIGINAL QUERY: %s\n", req.Query)
	fmt.Fprintf(&sb, "QUERY TYPE: %s\n\n", req.QueryType)
	sb.WriteString("RESPONSE TO EVALUATE:\n")
	sb.WriteString(truncate(req.Response, responsePromptCap))
	sb.WriteString("\n")
	if req.DataContext != "" {
		fmt.Fprintf(&sb, "\nDATA CONTEXT (for reference): %s\n", truncate(req.DataContext, contextPromptCap))
	}
	sb.WriteString(`
Evaluate the response on these criteria:
1. ACCURACY (1-10): Is the response factually correct? Does it use real data?
2. RELEVANCE (1-10): Does it directly answer the question asked?
3. HALLUCINATION: Does it make claims not supported by data? (true/false)
4. LOGICAL: Is the reasoning/calculation logical? (true/false)

Return ONLY valid JSON (no markdown, no explanation):
{"accuracy": 8, "relevance": 9, "hallucinated": false, "logical": true, "issues": []}
`)

	return sb.String()
}

// truncate caps s at n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
