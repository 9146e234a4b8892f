/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"rangerio.dev/rageval/eval"
)

// createStandardTable creates a table writer with standard formatting
// options, keeping console output consistent across reports.
func createStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 100,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// queryDisplayCap keeps table rows readable.
const queryDisplayCap = 50

// Table renders a batch's per-query results plus a summary footer. Returns
// whether the batch pass rate met the threshold, so callers can gate exit
// codes on it.
func Table(b *eval.BatchResult, threshold float64, w io.Writer) (bool, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Batch: %s (data source: %s)\n\n", b.BatchName, b.DataSource)

	table := createStandardTable([]string{"#", "Status", "Type", "Verdict", "Acc", "Rel", "Time", "Query"}, &buf)
	for i, r := range b.Results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			status,
			string(r.QueryType),
			string(r.Verdict),
			fmt.Sprintf("%.1f", r.AccuracyScore),
			fmt.Sprintf("%.1f", r.RelevanceScore),
			fmt.Sprintf("%.1fs", r.ResponseTimeSeconds),
			truncateQuery(r.Query),
		})
	}
	if err := table.Render(); err != nil {
		return false, fmt.Errorf("failed to render results table: %w", err)
	}

	passRateValue := b.PassRate()
	fmt.Fprintf(&buf, "\nQueries: %d  Passed: %d  Failed: %d  Rate: %.1f%%\n",
		b.TotalQueries, b.PassedQueries, b.FailedQueries, passRateValue*100)
	fmt.Fprintf(&buf, "Timing: %.1fs total, %.1fs avg per query\n",
		b.TotalTimeSeconds, b.AvgResponseTimeSeconds)
	fmt.Fprintf(&buf, "Quality: accuracy %.1f/10, relevance %.1f/10\n",
		b.AvgAccuracyScore, b.AvgRelevanceScore)

	for i, r := range b.Results {
		if len(r.Issues) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\nIssues for query %d (%s):\n", i+1, truncateQuery(r.Query))
		for _, issue := range r.Issues {
			fmt.Fprintf(&buf, "  - %s\n", issue)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return false, fmt.Errorf("failed to write report: %w", err)
	}
	return passRateValue >= threshold, nil
}

func truncateQuery(q string) string {
	if len(q) <= queryDisplayCap {
		return q
	}
	return q[:queryDisplayCap] + "..."
}
