/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import "time"

// BatchResult aggregates an ordered list of EvaluationResults for one named
// batch against one data source. It is a derived, disposable fold: build it
// only after every contributing evaluation exists, never incrementally.
type BatchResult struct {
	BatchName  string `json:"batch_name"`
	DataSource string `json:"data_source"`

	TotalQueries  int `json:"total_queries"`
	PassedQueries int `json:"passed_queries"`
	FailedQueries int `json:"failed_queries"`

	TotalTimeSeconds       float64 `json:"total_time_s"`
	AvgResponseTimeSeconds float64 `json:"avg_response_time_s"`
	AvgAccuracyScore       float64 `json:"avg_accuracy_score"`
	AvgRelevanceScore      float64 `json:"avg_relevance_score"`

	Results []*EvaluationResult `json:"results"`
}

// NewBatchResult folds results into batch-level statistics. A result passes
// when its verdict is accurate or partial; the averages are arithmetic
// means over all results, passed or not.
func NewBatchResult(name, dataSource string, totalTime time.Duration, results []*EvaluationResult) *BatchResult {
	b := &BatchResult{
		BatchName:        name,
		DataSource:       dataSource,
		TotalQueries:     len(results),
		TotalTimeSeconds: totalTime.Seconds(),
		Results:          results,
	}

	var sumTime, sumAccuracy, sumRelevance float64
	for _, r := range results {
		if r.Passed() {
			b.PassedQueries++
		}
		sumTime += r.ResponseTimeSeconds
		sumAccuracy += r.AccuracyScore
		sumRelevance += r.RelevanceScore
	}
	b.FailedQueries = b.TotalQueries - b.PassedQueries

	if n := float64(b.TotalQueries); n > 0 {
		b.AvgResponseTimeSeconds = sumTime / n
		b.AvgAccuracyScore = sumAccuracy / n
		b.AvgRelevanceScore = sumRelevance / n
	}
	return b
}

// PassRate returns the fraction of passed queries in [0, 1], or 0 for an
// empty batch.
func (b *BatchResult) PassRate() float64 {
	if b.TotalQueries == 0 {
		return 0
	}
	return float64(b.PassedQueries) / float64(b.TotalQueries)
}
