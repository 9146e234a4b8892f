/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import "rangerio.dev/rageval/eval/judgment"

// applyJudgment folds an extracted judgment into the result: adopt the
// judge's scores (clamped into [0, 10]) and record its findings as issues.
// Absent fields leave the pattern-only defaults untouched.
func applyJudgment(j *judgment.Judgment, result *EvaluationResult) {
	if j.Accuracy != nil {
		result.AccuracyScore = clampScore(*j.Accuracy)
	}
	if j.Relevance != nil {
		result.RelevanceScore = clampScore(*j.Relevance)
	}
	if j.IsHallucinated() {
		result.Issues = append(result.Issues, "AI detected potential hallucination")
	}
	if j.Logical != nil && !*j.Logical {
		result.Issues = append(result.Issues, "AI detected illogical reasoning")
	}
	result.Issues = append(result.Issues, j.Issues...)
}

// calculateVerdict decides the final verdict from the accumulated scores
// and issues. NO_ANSWER and ERROR are produced earlier in the pipeline,
// never here.
func calculateVerdict(result *EvaluationResult) {
	// An explicit hallucination flag overrides score-based reasoning.
	if result.AIEvaluation.IsHallucinated() {
		result.Verdict = Hallucinated
		return
	}

	switch {
	case result.AccuracyScore >= 7 && result.RelevanceScore >= 7:
		// High scores can still be downgraded by accumulated issue text.
		if len(result.Issues) == 0 {
			result.Verdict = Accurate
		} else {
			result.Verdict = PartiallyAccurate
		}
	case result.AccuracyScore >= 4:
		result.Verdict = PartiallyAccurate
	default:
		result.Verdict = Inaccurate
	}
}

// clampScore forces a judge-provided score into [0, 10].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
