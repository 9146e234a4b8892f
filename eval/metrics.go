/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	evaluationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rag_evaluations_total",
			Help: "Total number of response evaluations performed",
		},
		[]string{"query_type"},
	)

	verdictCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rag_evaluation_verdicts_total",
			Help: "Evaluation outcomes by verdict",
		},
		[]string{"query_type", "verdict"},
	)

	judgeFailureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rag_judge_failures_total",
			Help: "AI judge calls that degraded to pattern-only scoring",
		},
		[]string{"reason"},
	)

	accuracyGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rag_evaluation_accuracy_score",
			Help: "Most recent accuracy score (0-10)",
		},
		[]string{"query_type"},
	)

	relevanceGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rag_evaluation_relevance_score",
			Help: "Most recent relevance score (0-10)",
		},
		[]string{"query_type"},
	)
)

// recordEvaluation updates the evaluation metrics for a completed result.
func recordEvaluation(result *EvaluationResult) {
	queryType := string(result.QueryType)
	evaluationCounter.WithLabelValues(queryType).Inc()
	verdictCounter.WithLabelValues(queryType, string(result.Verdict)).Inc()
	accuracyGauge.WithLabelValues(queryType).Set(result.AccuracyScore)
	relevanceGauge.WithLabelValues(queryType).Set(result.RelevanceScore)
}

// recordJudgeFailure counts a judge call that produced no usable judgment.
func recordJudgeFailure(reason string) {
	judgeFailureCounter.WithLabelValues(reason).Inc()
}
