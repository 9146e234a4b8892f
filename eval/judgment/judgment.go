/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judgment recovers a structured quality judgment from the raw,
// untrusted text a judge model returns. Judge models do not reliably emit
// clean JSON, so extraction is a strict-to-lenient fallback chain; when
// every strategy fails the caller gets nil, not an error, and falls back
// to pattern-only scoring.
package judgment

// Judgment is the structured verdict a judge model is asked to produce.
// Fields are pointers so that an absent key is distinguishable from a
// zero value; downstream code checks presence instead of probing shapes.
type Judgment struct {
	// Accuracy rates factual correctness, nominally 1-10.
	Accuracy *float64 `json:"accuracy,omitempty"`
	// Relevance rates how directly the question was answered, nominally 1-10.
	Relevance *float64 `json:"relevance,omitempty"`
	// Hallucinated is true when the response makes claims the data does not support.
	Hallucinated *bool `json:"hallucinated,omitempty"`
	// Logical is false when the reasoning or calculation is unsound.
	Logical *bool `json:"logical,omitempty"`
	// Issues are free-form problems the judge identified.
	Issues []string `json:"issues,omitempty"`
}

// IsHallucinated reports whether the judge explicitly flagged hallucination.
func (j *Judgment) IsHallucinated() bool {
	return j != nil && j.Hallucinated != nil && *j.Hallucinated
}

// empty reports whether no field was recovered at all. The brace-scan and
// salvage strategies only succeed when they found something.
func (j *Judgment) empty() bool {
	return j.Accuracy == nil && j.Relevance == nil &&
		j.Hallucinated == nil && j.Logical == nil && len(j.Issues) == 0
}
