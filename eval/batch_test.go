/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval_test

import (
	"math"
	"testing"
	"time"

	"rangerio.dev/rageval/eval"
)

func TestNewBatchResult(t *testing.T) {
	results := []*eval.EvaluationResult{
		{QueryType: eval.ContentLookup, Verdict: eval.Accurate, AccuracyScore: 10, RelevanceScore: 10, ResponseTimeSeconds: 2},
		{QueryType: eval.Aggregation, Verdict: eval.PartiallyAccurate, AccuracyScore: 6, RelevanceScore: 8, ResponseTimeSeconds: 4},
		{QueryType: eval.Aggregation, Verdict: eval.Inaccurate, AccuracyScore: 2, RelevanceScore: 3, ResponseTimeSeconds: 6},
		{QueryType: eval.Calculation, Verdict: eval.Hallucinated, AccuracyScore: 9, RelevanceScore: 9, ResponseTimeSeconds: 8},
		{QueryType: eval.TrendAnalysis, Verdict: eval.NoAnswer, AccuracyScore: 0, RelevanceScore: 0, ResponseTimeSeconds: 1},
	}

	batch := eval.NewBatchResult("sales_scenarios", "sales_2024.csv", 30*time.Second, results)

	if batch.TotalQueries != 5 {
		t.Errorf("total: got = %d, wanted = 5", batch.TotalQueries)
	}
	// Accurate and partial count as passed; hallucinated, inaccurate, and
	// no-answer do not.
	if batch.PassedQueries != 2 {
		t.Errorf("passed: got = %d, wanted = 2", batch.PassedQueries)
	}
	if batch.FailedQueries != 3 {
		t.Errorf("failed: got = %d, wanted = 3", batch.FailedQueries)
	}

	// Averages cover all results, not just passed ones.
	wantAccuracy := (10.0 + 6 + 2 + 9 + 0) / 5
	if math.Abs(batch.AvgAccuracyScore-wantAccuracy) > 1e-9 {
		t.Errorf("avg accuracy: got = %v, wanted = %v", batch.AvgAccuracyScore, wantAccuracy)
	}
	wantRelevance := (10.0 + 8 + 3 + 9 + 0) / 5
	if math.Abs(batch.AvgRelevanceScore-wantRelevance) > 1e-9 {
		t.Errorf("avg relevance: got = %v, wanted = %v", batch.AvgRelevanceScore, wantRelevance)
	}
	wantTime := (2.0 + 4 + 6 + 8 + 1) / 5
	if math.Abs(batch.AvgResponseTimeSeconds-wantTime) > 1e-9 {
		t.Errorf("avg response time: got = %v, wanted = %v", batch.AvgResponseTimeSeconds, wantTime)
	}
	if batch.TotalTimeSeconds != 30 {
		t.Errorf("total time: got = %v, wanted = 30", batch.TotalTimeSeconds)
	}
	if got := batch.PassRate(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("pass rate: got = %v, wanted = 0.4", got)
	}
	if len(batch.Results) != 5 {
		t.Errorf("results: got = %d, wanted = 5 (order preserved)", len(batch.Results))
	}
}

func TestNewBatchResultEmpty(t *testing.T) {
	batch := eval.NewBatchResult("empty", "none.csv", 0, nil)

	if batch.TotalQueries != 0 || batch.PassedQueries != 0 || batch.FailedQueries != 0 {
		t.Errorf("counts: got = (%d, %d, %d), wanted zeros", batch.TotalQueries, batch.PassedQueries, batch.FailedQueries)
	}
	if batch.AvgAccuracyScore != 0 || batch.AvgResponseTimeSeconds != 0 {
		t.Error("averages of an empty batch must be zero, not NaN")
	}
	if batch.PassRate() != 0 {
		t.Errorf("pass rate: got = %v, wanted = 0", batch.PassRate())
	}
}

func TestVerdictPassed(t *testing.T) {
	tests := []struct {
		verdict eval.Verdict
		want    bool
	}{
		{eval.Accurate, true},
		{eval.PartiallyAccurate, true},
		{eval.Inaccurate, false},
		{eval.Hallucinated, false},
		{eval.NoAnswer, false},
		{eval.EvalError, false},
	}
	for _, tt := range tests {
		r := &eval.EvaluationResult{Verdict: tt.verdict}
		if got := r.Passed(); got != tt.want {
			t.Errorf("%s passed: got = %v, wanted = %v", tt.verdict, got, tt.want)
		}
	}
}
