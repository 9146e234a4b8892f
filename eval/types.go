/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"rangerio.dev/rageval/eval/judgment"
)

// QueryType categorizes test queries so results can be aggregated by the
// kind of reasoning the backend was asked to perform.
type QueryType string

const (
	// ContentLookup asks for data present verbatim, e.g. "What products are listed?"
	ContentLookup QueryType = "content_lookup"
	// Aggregation asks for a sum or count, e.g. "What is the total revenue?"
	Aggregation QueryType = "aggregation"
	// Calculation asks for derived arithmetic, e.g. "What is the average margin?"
	Calculation QueryType = "calculation"
	// CrossFieldLogic relates multiple fields, e.g. "Which region has highest X but lowest Y?"
	CrossFieldLogic QueryType = "cross_field"
	// TrendAnalysis compares across time, e.g. "How did Q4 compare to Q3?"
	TrendAnalysis QueryType = "trend"
	// ComplexReasoning requires multi-step reasoning.
	ComplexReasoning QueryType = "complex"
)

// Verdict is the final categorical judgment of a response's quality.
type Verdict string

const (
	// Accurate means the response is correct.
	Accurate Verdict = "accurate"
	// PartiallyAccurate means some of the response is correct, some has issues.
	PartiallyAccurate Verdict = "partial"
	// Inaccurate means the response is wrong.
	Inaccurate Verdict = "inaccurate"
	// Hallucinated means the judge flagged claims not supported by the data.
	Hallucinated Verdict = "hallucinated"
	// NoAnswer means the model refused to answer.
	NoAnswer Verdict = "no_answer"
	// EvalError means the evaluation itself could not run (malformed spec).
	EvalError Verdict = "error"
)

// NumberRange is an inclusive [Min, Max] bound for the first number found
// in a response.
type NumberRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// QuerySpec is the contract for one test query. It is authored once per
// test case and read-only thereafter; no component mutates it.
type QuerySpec struct {
	Query       string    `json:"query" yaml:"query"`
	QueryType   QueryType `json:"query_type" yaml:"query_type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`

	// Pattern-based validation. MustContain and MustNotContain are the hard
	// checks; MustContainPattern is advisory (issue-only).
	MustContain        []string `json:"must_contain,omitempty" yaml:"must_contain,omitempty"`
	MustNotContain     []string `json:"must_not_contain,omitempty" yaml:"must_not_contain,omitempty"`
	MustContainPattern string   `json:"must_contain_pattern,omitempty" yaml:"must_contain_pattern,omitempty"`

	// ExpectedNumberRange bounds the first number found in the response.
	// Advisory: a response with no parseable number is not penalized.
	ExpectedNumberRange *NumberRange `json:"expected_number_range,omitempty" yaml:"expected_number_range,omitempty"`

	// CustomValidator is an arbitrary predicate over the raw response.
	// A panic inside it is recorded as an issue, never propagated.
	CustomValidator func(string) bool `json:"-" yaml:"-"`

	// UseAIEval controls whether the AI judge is consulted. Nil means true.
	UseAIEval *bool `json:"use_ai_eval,omitempty" yaml:"use_ai_eval,omitempty"`

	// MaxResponseTime is the per-query latency budget. Zero means 90s.
	MaxResponseTime time.Duration `json:"max_response_time,omitempty" yaml:"max_response_time,omitempty"`
}

// DefaultMaxResponseTime applies when QuerySpec.MaxResponseTime is zero.
const DefaultMaxResponseTime = 90 * time.Second

// AIEval reports whether AI evaluation is enabled for this spec.
func (s *QuerySpec) AIEval() bool {
	return s.UseAIEval == nil || *s.UseAIEval
}

// ResponseTimeBudget returns the latency budget, defaulted.
func (s *QuerySpec) ResponseTimeBudget() time.Duration {
	if s.MaxResponseTime <= 0 {
		return DefaultMaxResponseTime
	}
	return s.MaxResponseTime
}

// Validate reports whether the query spec itself is well-formed. A failure here
// is an infrastructure error, not a response-quality signal.
func (s *QuerySpec) Validate() error {
	if s.Query == "" {
		return errors.New("query must not be empty")
	}
	if s.MustContainPattern != "" {
		if _, err := regexp.Compile("(?i)" + s.MustContainPattern); err != nil {
			return fmt.Errorf("invalid must_contain_pattern: %w", err)
		}
	}
	if r := s.ExpectedNumberRange; r != nil && r.Min > r.Max {
		return fmt.Errorf("expected_number_range min %g exceeds max %g", r.Min, r.Max)
	}
	return nil
}

// responseStorageCap is how much of a response is retained on the result.
// Long responses are truncated for storage; only the prompt-side caps in
// the judge package affect what the judge sees.
const responseStorageCap = 2000

// EvaluationResult is the immutable record of evaluating one response
// against one QuerySpec. Every field is computed before the result is
// returned; issues are accumulated and never removed.
type EvaluationResult struct {
	Query               string    `json:"query"`
	QueryType           QueryType `json:"query_type"`
	Response            string    `json:"response"`
	ResponseTimeSeconds float64   `json:"response_time_s"`

	Verdict        Verdict `json:"verdict"`
	AccuracyScore  float64 `json:"accuracy_score"`
	RelevanceScore float64 `json:"relevance_score"`

	PatternChecksPassed bool     `json:"pattern_checks_passed"`
	ContainsRequired    []string `json:"contains_required,omitempty"`
	MissingRequired     []string `json:"missing_required,omitempty"`
	ContainsForbidden   []string `json:"contains_forbidden,omitempty"`

	// AIEvaluation is the judgment extracted from the judge's raw text,
	// kept for audit. Nil when the judge was skipped or unavailable.
	AIEvaluation *judgment.Judgment `json:"ai_evaluation,omitempty"`

	Issues []string `json:"issues,omitempty"`
}

// Passed reports whether this evaluation counts as a pass for batch
// aggregation purposes.
func (r *EvaluationResult) Passed() bool {
	return r.Verdict == Accurate || r.Verdict == PartiallyAccurate
}
