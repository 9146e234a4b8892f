/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import (
	"context"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"rangerio.dev/rageval/eval/judge"
	"rangerio.dev/rageval/eval/judgment"
)

// Evaluator runs the evaluation pipeline. Construct one per test session
// and pass it around explicitly; it holds no mutable state, so a single
// instance is safe for concurrent use.
type Evaluator struct {
	judge judge.Interface
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithJudge supplies the AI judge consulted for specs with AI evaluation
// enabled. Without one, every evaluation is pattern-only.
func WithJudge(j judge.Interface) Option {
	return func(e *Evaluator) {
		e.judge = j
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs one response through the pipeline and returns the completed
// result. It never returns an error and never panics: response-quality
// problems become issues and verdicts, judge failures degrade to
// pattern-only scoring, and a malformed spec yields the EvalError verdict.
func (e *Evaluator) Evaluate(ctx context.Context, spec *QuerySpec, response string, responseTime time.Duration, dataContext string) *EvaluationResult {
	result := &EvaluationResult{
		Query:               spec.Query,
		QueryType:           spec.QueryType,
		Response:            truncate(response, responseStorageCap),
		ResponseTimeSeconds: responseTime.Seconds(),
		Verdict:             Accurate,
		AccuracyScore:       10,
		RelevanceScore:      10,
		PatternChecksPassed: true,
	}

	if err := spec.Validate(); err != nil {
		result.Verdict = EvalError
		result.AccuracyScore = 0
		result.RelevanceScore = 0
		result.Issues = append(result.Issues, fmt.Sprintf("Invalid query spec: %v", err))
		recordEvaluation(result)
		return result
	}

	// Refusals short-circuit everything else; a refusal is never re-scored
	// upward by a lenient judge.
	if isRefusal(response) {
		result.Verdict = NoAnswer
		result.AccuracyScore = 0
		result.RelevanceScore = 0
		result.Issues = append(result.Issues, refusalIssue)
		recordEvaluation(result)
		return result
	}

	checkPatterns(spec, response, result)

	if spec.AIEval() && e.judge != nil {
		e.aiEvaluate(ctx, spec, response, dataContext, result)
	}

	calculateVerdict(result)
	recordEvaluation(result)
	return result
}

// aiEvaluate consults the judge and folds its judgment into the result.
// Any failure along the way is logged and counted, then ignored; the
// evaluation proceeds on pattern-check scores alone.
func (e *Evaluator) aiEvaluate(ctx context.Context, spec *QuerySpec, response, dataContext string, result *EvaluationResult) {
	log := clog.FromContext(ctx)

	raw, err := e.judge.Judge(ctx, &judge.Request{
		Query:       spec.Query,
		QueryType:   string(spec.QueryType),
		Response:    response,
		DataContext: dataContext,
	})
	if err != nil {
		log.Warnf("AI evaluation unavailable: %v", err)
		recordJudgeFailure("request")
		return
	}

	j := judgment.Extract(raw)
	if j == nil {
		log.With("judge_text_length", len(raw)).Warn("No judgment found in judge response")
		recordJudgeFailure("unparseable")
		return
	}

	result.AIEvaluation = j
	applyJudgment(j, result)
}

// truncate caps s at n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
