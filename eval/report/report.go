/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report projects batch evaluation results into structured JSON
// documents and console tables. No scoring logic lives here; everything is
// a pure projection of eval.BatchResult.
package report

import (
	"fmt"
	"math"
	"time"

	"rangerio.dev/rageval/eval"
)

// Summary is the pass/fail block of a batch report.
type Summary struct {
	TotalQueries int    `json:"total_queries"`
	Passed       int    `json:"passed"`
	Failed       int    `json:"failed"`
	PassRate     string `json:"pass_rate"`
}

// Timing is the latency block of a batch report.
type Timing struct {
	TotalTimeSeconds       float64 `json:"total_time_s"`
	AvgResponseTimeSeconds float64 `json:"avg_response_time_s"`
}

// Quality is the score block of a batch report.
type Quality struct {
	AvgAccuracyScore  float64 `json:"avg_accuracy_score"`
	AvgRelevanceScore float64 `json:"avg_relevance_score"`
}

// Batch is the report artifact for one batch.
type Batch struct {
	BatchName   string                   `json:"batch_name"`
	DataSource  string                   `json:"data_source"`
	GeneratedAt string                   `json:"generated_at,omitempty"`
	Summary     Summary                  `json:"summary"`
	Timing      Timing                   `json:"timing"`
	Quality     Quality                  `json:"quality"`
	Results     []*eval.EvaluationResult `json:"results"`
}

// FromBatch projects a BatchResult into its report form.
func FromBatch(b *eval.BatchResult) *Batch {
	return &Batch{
		BatchName:  b.BatchName,
		DataSource: b.DataSource,
		Summary: Summary{
			TotalQueries: b.TotalQueries,
			Passed:       b.PassedQueries,
			Failed:       b.FailedQueries,
			PassRate:     passRate(b.PassedQueries, b.TotalQueries),
		},
		Timing: Timing{
			TotalTimeSeconds:       round2(b.TotalTimeSeconds),
			AvgResponseTimeSeconds: round2(b.AvgResponseTimeSeconds),
		},
		Quality: Quality{
			AvgAccuracyScore:  round2(b.AvgAccuracyScore),
			AvgRelevanceScore: round2(b.AvgRelevanceScore),
		},
		Results: b.Results,
	}
}

// TypeStats aggregates results for one query type across batches, enabling
// "which query type is weakest" analysis.
type TypeStats struct {
	Total                  int     `json:"total"`
	Passed                 int     `json:"passed"`
	Failed                 int     `json:"failed"`
	PassRate               string  `json:"pass_rate"`
	AvgAccuracy            float64 `json:"avg_accuracy"`
	AvgResponseTimeSeconds float64 `json:"avg_response_time_s"`
}

// Overall is the cross-batch total block of a summary report.
type Overall struct {
	TotalBatches     int     `json:"total_batches"`
	TotalQueries     int     `json:"total_queries"`
	TotalPassed      int     `json:"total_passed"`
	TotalFailed      int     `json:"total_failed"`
	PassRate         string  `json:"pass_rate"`
	TotalTimeSeconds float64 `json:"total_time_s"`
}

// SummaryReport spans all batches of a run.
type SummaryReport struct {
	GeneratedAt string                        `json:"generated_at,omitempty"`
	Overall     Overall                       `json:"overall"`
	ByQueryType map[eval.QueryType]*TypeStats `json:"by_query_type"`
	Batches     []*Batch                      `json:"batches"`
}

// NewSummary folds a run's batches into a summary report.
func NewSummary(batches []*eval.BatchResult) *SummaryReport {
	s := &SummaryReport{
		ByQueryType: aggregateByType(batches),
		Batches:     make([]*Batch, 0, len(batches)),
	}

	var totalTime float64
	for _, b := range batches {
		s.Overall.TotalQueries += b.TotalQueries
		s.Overall.TotalPassed += b.PassedQueries
		totalTime += b.TotalTimeSeconds
		s.Batches = append(s.Batches, FromBatch(b))
	}
	s.Overall.TotalBatches = len(batches)
	s.Overall.TotalFailed = s.Overall.TotalQueries - s.Overall.TotalPassed
	s.Overall.PassRate = passRate(s.Overall.TotalPassed, s.Overall.TotalQueries)
	s.Overall.TotalTimeSeconds = round2(totalTime)
	return s
}

// aggregateByType regroups every result by query type and recomputes the
// batch statistics per type.
func aggregateByType(batches []*eval.BatchResult) map[eval.QueryType]*TypeStats {
	type acc struct {
		stats   TypeStats
		sumAcc  float64
		sumTime float64
	}
	byType := make(map[eval.QueryType]*acc)

	for _, b := range batches {
		for _, r := range b.Results {
			a := byType[r.QueryType]
			if a == nil {
				a = &acc{}
				byType[r.QueryType] = a
			}
			a.stats.Total++
			if r.Passed() {
				a.stats.Passed++
			}
			a.sumAcc += r.AccuracyScore
			a.sumTime += r.ResponseTimeSeconds
		}
	}

	out := make(map[eval.QueryType]*TypeStats, len(byType))
	for queryType, a := range byType {
		n := float64(a.stats.Total)
		a.stats.Failed = a.stats.Total - a.stats.Passed
		a.stats.PassRate = passRate(a.stats.Passed, a.stats.Total)
		a.stats.AvgAccuracy = round2(a.sumAcc / n)
		a.stats.AvgResponseTimeSeconds = round2(a.sumTime / n)
		out[queryType] = &a.stats
	}
	return out
}

// passRate formats a pass percentage, or "N/A" for empty denominators.
func passRate(passed, total int) string {
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(passed)/float64(total)*100)
}

// round2 rounds to two decimals for report readability.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// timestamp formats report generation times.
func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
