/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Command rageval runs batches of accuracy evaluations against a RAG
// backend. Each argument is a YAML batch file; for every query in a batch
// the runner queries the backend, evaluates the response, and folds the
// results into JSON reports plus a console table. The exit code reflects
// whether the overall pass rate met the configured threshold.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"rangerio.dev/rageval/eval"
	"rangerio.dev/rageval/eval/judge"
	"rangerio.dev/rageval/eval/report"
	"rangerio.dev/rageval/ragclient"
)

type config struct {
	BackendURL    string        `env:"BACKEND_URL,default=http://127.0.0.1:9000"`
	JudgeURL      string        `env:"JUDGE_URL"`
	ReportDir     string        `env:"REPORT_DIR,default=reports/user_scenarios"`
	PassThreshold float64       `env:"PASS_THRESHOLD,default=0.8"`
	DisableAIEval bool          `env:"DISABLE_AI_EVAL,default=false"`
	QueryMode     string        `env:"QUERY_MODE,default=assistant"`
	IndexWait     time.Duration `env:"INDEX_WAIT,default=2m"`
}

// batchFile is the YAML description of one batch.
type batchFile struct {
	Name        string      `yaml:"name"`
	DataSource  string      `yaml:"data_source"`
	ProjectID   int         `yaml:"project_id"`
	DataContext string      `yaml:"data_context"`
	Queries     []querySpec `yaml:"queries"`
}

// querySpec mirrors eval.QuerySpec for YAML authoring. Durations are
// expressed in seconds to keep batch files plain.
type querySpec struct {
	Query                  string            `yaml:"query"`
	QueryType              string            `yaml:"query_type"`
	Description            string            `yaml:"description"`
	MustContain            []string          `yaml:"must_contain"`
	MustNotContain         []string          `yaml:"must_not_contain"`
	MustContainPattern     string            `yaml:"must_contain_pattern"`
	ExpectedNumberRange    *eval.NumberRange `yaml:"expected_number_range"`
	UseAIEval              *bool             `yaml:"use_ai_eval"`
	MaxResponseTimeSeconds float64           `yaml:"max_response_time_s"`
}

func (q *querySpec) toSpec() *eval.QuerySpec {
	return &eval.QuerySpec{
		Query:               q.Query,
		QueryType:           eval.QueryType(q.QueryType),
		Description:         q.Description,
		MustContain:         q.MustContain,
		MustNotContain:      q.MustNotContain,
		MustContainPattern:  q.MustContainPattern,
		ExpectedNumberRange: q.ExpectedNumberRange,
		UseAIEval:           q.UseAIEval,
		MaxResponseTime:     time.Duration(q.MaxResponseTimeSeconds * float64(time.Second)),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		clog.FromContext(ctx).Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, batchPaths []string) error {
	log := clog.FromContext(ctx)

	if len(batchPaths) == 0 {
		return fmt.Errorf("usage: rageval <batch.yaml> [batch.yaml ...]")
	}

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	evaluator, err := newEvaluator(&cfg)
	if err != nil {
		return err
	}
	backend := ragclient.New(cfg.BackendURL)
	writer, err := report.NewWriter(cfg.ReportDir)
	if err != nil {
		return err
	}

	var batches []*eval.BatchResult
	for _, path := range batchPaths {
		if ctx.Err() != nil {
			log.Warn("Run cancelled, skipping remaining batches")
			break
		}
		batch, err := runBatch(ctx, &cfg, evaluator, backend, path)
		if err != nil {
			return fmt.Errorf("batch %s: %w", path, err)
		}
		batches = append(batches, batch)

		if reportPath, err := writer.WriteBatch(batch); err != nil {
			log.Warnf("Failed to write batch report: %v", err)
		} else {
			log.With("report", reportPath).Info("Wrote batch report")
		}
		if _, err := report.Table(batch, cfg.PassThreshold, os.Stdout); err != nil {
			log.Warnf("Failed to render batch table: %v", err)
		}
	}

	if len(batches) == 0 {
		return fmt.Errorf("no batches completed")
	}
	if reportPath, err := writer.WriteSummary(batches); err != nil {
		log.Warnf("Failed to write summary report: %v", err)
	} else {
		log.With("report", reportPath).Info("Wrote summary report")
	}

	var passed, total int
	for _, b := range batches {
		passed += b.PassedQueries
		total += b.TotalQueries
	}
	if total == 0 {
		return fmt.Errorf("no queries evaluated")
	}
	rate := float64(passed) / float64(total)
	log.With("passed", passed, "total", total).Infof("Overall pass rate %.1f%%", rate*100)
	if rate < cfg.PassThreshold {
		return fmt.Errorf("pass rate %.1f%% below threshold %.1f%%", rate*100, cfg.PassThreshold*100)
	}
	return nil
}

// newEvaluator wires the evaluator, defaulting the judge to the backend's
// own text-generation endpoint so runs stay self-contained.
func newEvaluator(cfg *config) (*eval.Evaluator, error) {
	if cfg.DisableAIEval {
		return eval.New(), nil
	}
	judgeURL := cfg.JudgeURL
	if judgeURL == "" {
		judgeURL = cfg.BackendURL + "/llm/generate"
	}
	j, err := judge.NewHTTP(judgeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create judge: %w", err)
	}
	return eval.New(eval.WithJudge(j)), nil
}

func runBatch(ctx context.Context, cfg *config, evaluator *eval.Evaluator, backend *ragclient.Client, path string) (*eval.BatchResult, error) {
	log := clog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if batch.Name == "" {
		return nil, fmt.Errorf("batch name is required")
	}

	waitCtx, cancel := context.WithTimeout(ctx, cfg.IndexWait)
	backend.WaitReady(waitCtx, batch.ProjectID)
	cancel()

	mode := ragclient.Mode(cfg.QueryMode)
	start := time.Now()
	results := make([]*eval.EvaluationResult, 0, len(batch.Queries))

	for _, q := range batch.Queries {
		// Cancellation means: stop issuing further evaluations. In-flight
		// judge calls own their timeout and are not forcibly aborted.
		if ctx.Err() != nil {
			log.Warn("Run cancelled, stopping batch early")
			break
		}

		spec := q.toSpec()
		log.With("query_type", spec.QueryType).Infof("Querying: %s", spec.Query)

		answer, err := backend.Query(ctx, batch.ProjectID, spec.Query, mode)
		if err != nil {
			log.Warnf("Backend query failed: %v", err)
			results = append(results, &eval.EvaluationResult{
				Query:     spec.Query,
				QueryType: spec.QueryType,
				Verdict:   eval.EvalError,
				Issues:    []string{fmt.Sprintf("Backend query failed: %v", err)},
			})
			continue
		}
		if answer.Elapsed > spec.ResponseTimeBudget() {
			log.With("elapsed", answer.Elapsed, "budget", spec.ResponseTimeBudget()).
				Warn("Response time exceeded budget")
		}

		result := evaluator.Evaluate(ctx, spec, answer.Text, answer.Elapsed, batch.DataContext)
		results = append(results, result)
	}

	return eval.NewBatchResult(batch.Name, batch.DataSource, time.Since(start), results), nil
}
