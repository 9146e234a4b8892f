/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package eval implements the accuracy evaluation engine for RAG responses.

# Overview

The engine turns a free-form RAG response into a deterministic, structured
verdict that automated tests can assert on. Each evaluation is a pure
transformation of its inputs plus at most one external call (the AI judge):

	QuerySpec + response
	    -> refusal detection
	    -> pattern validation
	    -> AI judge (optional, failure-tolerant)
	    -> verdict calculation
	    -> EvaluationResult

# Core Components

  - QuerySpec: declarative contract for one test query (immutable)
  - Evaluator: runs the pipeline; constructed explicitly, no global state
  - EvaluationResult: immutable record of one evaluation
  - BatchResult: fold of many results into batch-level statistics

# Error Model

Response-quality problems (missing terms, hallucinations, refusals) are
captured as data - issues and verdicts - never as returned errors. A judge
timeout or unparseable judgment degrades to pattern-only scoring. The only
hard failure is a malformed QuerySpec, which yields the EvalError verdict
so that evaluating a batch of responses never aborts partway.

# Usage

	evaluator := eval.New(eval.WithJudge(judgeClient))
	result := evaluator.Evaluate(ctx, spec, response, elapsed, dataContext)
	if !result.Passed() {
		// inspect result.Verdict and result.Issues
	}

Concurrent evaluations against different QuerySpecs are independent and
require no locking; batch aggregation happens after all contributing
evaluations complete.
*/
package eval
