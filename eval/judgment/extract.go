/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judgment

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Strategy is one parsing attempt in the fallback chain. It returns the
// extracted judgment and whether the attempt succeeded.
type Strategy func(text string) (*Judgment, bool)

// strategies is the ordered strict-to-lenient chain. Extraction stops at
// the first success; adding a strategy does not touch any call site.
var strategies = []Strategy{
	parseDirect,
	parseFenced,
	parseBraceSpan,
	salvageKeyValues,
}

// Extract recovers a Judgment from raw judge text. It returns nil when no
// strategy succeeds; the caller must treat that as "AI evaluation
// unavailable", never as an error.
func Extract(raw string) *Judgment {
	for _, strategy := range strategies {
		if j, ok := strategy(raw); ok {
			return j
		}
	}
	return nil
}

// parseDirect treats the trimmed text as a bare JSON object.
func parseDirect(text string) (*Judgment, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var j Judgment
	if err := json.Unmarshal([]byte(trimmed), &j); err != nil {
		return nil, false
	}
	return &j, true
}

// fencePattern captures the body of the first Markdown code fence,
// tolerating an optional language tag after the opening fence.
var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\r?\n?(.*?)```")

// parseFenced strips Markdown code-fence markers and retries a direct parse.
func parseFenced(text string) (*Judgment, bool) {
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return parseDirect(m[1])
}

// parseBraceSpan locates a '{' and scans forward tracking nesting depth,
// treating characters inside quoted strings (including escaped quotes and
// backslashes) as non-structural. The balanced span is parsed as JSON.
// This extracts an object embedded in surrounding prose, nested objects
// and arrays included, without a full JSON grammar. Spans that fail to
// parse, or parse to an object with no known keys, are skipped so that
// unrelated objects earlier in the prose cannot mask the judgment.
func parseBraceSpan(text string) (*Judgment, bool) {
	offset := 0
	for {
		idx := strings.IndexByte(text[offset:], '{')
		if idx < 0 {
			return nil, false
		}
		start := offset + idx

		if end, ok := balancedSpanEnd(text, start); ok {
			if j, ok := parseDirect(text[start : end+1]); ok && !j.empty() {
				return j, true
			}
		}
		offset = start + 1
	}
}

// balancedSpanEnd returns the index of the '}' that closes the object
// opened at start, or false if the text ends first.
func balancedSpanEnd(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
		default:
			switch c {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}
	}
	return 0, false
}

// Loose key:value patterns for the last-resort salvage. These tolerate
// missing quotes, extra whitespace, '=' separators, and arbitrary casing.
var (
	accuracyPattern     = regexp.MustCompile(`(?i)"?accuracy"?\s*[:=]\s*"?(\d+(?:\.\d+)?)`)
	relevancePattern    = regexp.MustCompile(`(?i)"?relevance"?\s*[:=]\s*"?(\d+(?:\.\d+)?)`)
	hallucinatedPattern = regexp.MustCompile(`(?i)"?hallucinated"?\s*[:=]\s*"?(true|false)`)
	logicalPattern      = regexp.MustCompile(`(?i)"?logical"?\s*[:=]\s*"?(true|false)`)
)

// salvageKeyValues independently regex-searches for each known key and
// assembles whatever subset is found into a partial judgment. Succeeds
// only when at least one field was recovered.
func salvageKeyValues(text string) (*Judgment, bool) {
	var j Judgment

	if m := accuracyPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			j.Accuracy = &v
		}
	}
	if m := relevancePattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			j.Relevance = &v
		}
	}
	if m := hallucinatedPattern.FindStringSubmatch(text); m != nil {
		v := strings.EqualFold(m[1], "true")
		j.Hallucinated = &v
	}
	if m := logicalPattern.FindStringSubmatch(text); m != nil {
		v := strings.EqualFold(m[1], "true")
		j.Logical = &v
	}

	if j.empty() {
		return nil, false
	}
	return &j, true
}
