/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judgment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// cleanJudgment is what every lenient wrapping of the same payload must
// extract to.
var cleanJudgment = &Judgment{
	Accuracy:     floatPtr(8),
	Relevance:    floatPtr(9),
	Hallucinated: boolPtr(false),
	Logical:      boolPtr(true),
	Issues:       []string{"minor rounding"},
}

const cleanJSON = `{"accuracy": 8, "relevance": 9, "hallucinated": false, "logical": true, "issues": ["minor rounding"]}`

func TestExtractEquivalentWrappings(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "clean JSON", text: cleanJSON},
		{name: "leading and trailing whitespace", text: "\n\n  " + cleanJSON + "  \n"},
		{name: "json fence", text: "```json\n" + cleanJSON + "\n```"},
		{name: "bare fence", text: "```\n" + cleanJSON + "\n```"},
		{name: "fence with surrounding prose", text: "Here is my evaluation:\n```json\n" + cleanJSON + "\n```\nLet me know if you need more."},
		{name: "leading prose", text: "Sure! Based on the data, my judgment is " + cleanJSON},
		{name: "leading and trailing prose", text: "My judgment: " + cleanJSON + " -- happy to elaborate."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if got == nil {
				t.Fatal("Extract returned nil, wanted a judgment")
			}
			if diff := cmp.Diff(cleanJudgment, got); diff != "" {
				t.Errorf("judgment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractNestedBraces(t *testing.T) {
	text := `The data {"region": "west"} suggests the following:
{"accuracy": 7, "relevance": 6, "hallucinated": false, "logical": true, "issues": ["detail": incomplete]}`

	// The first balanced object in the prose is not a judgment; extraction
	// still succeeds via salvage when the real object is malformed.
	got := Extract(text)
	if got == nil {
		t.Fatal("Extract returned nil, wanted a judgment")
	}
	if got.Accuracy == nil || *got.Accuracy != 7 {
		t.Errorf("accuracy: got = %v, wanted = 7", got.Accuracy)
	}
	if got.Relevance == nil || *got.Relevance != 6 {
		t.Errorf("relevance: got = %v, wanted = 6", got.Relevance)
	}
}

func TestExtractNestedObject(t *testing.T) {
	text := `Evaluation follows.
{"accuracy": 5, "relevance": 5, "hallucinated": true, "logical": false, "issues": ["claims {unverified} totals", "uses \"estimated\" figures"]}
End of evaluation.`

	got := Extract(text)
	if got == nil {
		t.Fatal("Extract returned nil, wanted a judgment")
	}
	if !got.IsHallucinated() {
		t.Error("hallucinated: got = false, wanted = true")
	}
	if len(got.Issues) != 2 {
		t.Fatalf("issue count: got = %d, wanted = 2", len(got.Issues))
	}
	if got.Issues[0] != "claims {unverified} totals" {
		t.Errorf("issue[0]: got = %q", got.Issues[0])
	}
	if got.Issues[1] != `uses "estimated" figures` {
		t.Errorf("issue[1]: got = %q", got.Issues[1])
	}
}

func TestExtractSalvagePartial(t *testing.T) {
	text := "I'd rate the Accuracy: 6.5 overall, relevance = 8, and hallucinated: false for this one."

	got := Extract(text)
	if got == nil {
		t.Fatal("Extract returned nil, wanted a partial judgment")
	}
	if got.Accuracy == nil || *got.Accuracy != 6.5 {
		t.Errorf("accuracy: got = %v, wanted = 6.5", got.Accuracy)
	}
	if got.Relevance == nil || *got.Relevance != 8 {
		t.Errorf("relevance: got = %v, wanted = 8", got.Relevance)
	}
	if got.Hallucinated == nil || *got.Hallucinated {
		t.Errorf("hallucinated: got = %v, wanted = false", got.Hallucinated)
	}
	if got.Logical != nil {
		t.Errorf("logical: got = %v, wanted = nil (absent)", got.Logical)
	}
}

func TestExtractBareBoolWords(t *testing.T) {
	text := `accuracy: 9
relevance: 9
hallucinated: false
logical: true`

	got := Extract(text)
	if got == nil {
		t.Fatal("Extract returned nil, wanted a judgment")
	}
	if got.Logical == nil || !*got.Logical {
		t.Errorf("logical: got = %v, wanted = true", got.Logical)
	}
}

func TestExtractNoJudgment(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain prose", text: "The response looks fine to me."},
		{name: "unbalanced brace with no salvageable keys", text: `{"verdict": "good", "score"`},
		{name: "non-numeric scores", text: `accuracy: high, relevance: poor`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.text); got != nil {
				t.Errorf("Extract: got = %+v, wanted = nil", got)
			}
		})
	}
}

func TestExtractEmptyObject(t *testing.T) {
	// A parseable object with no known keys still counts as a successful
	// direct parse; all fields stay absent.
	got := Extract("{}")
	if got == nil {
		t.Fatal("Extract returned nil, wanted an empty judgment")
	}
	if got.Accuracy != nil || got.Relevance != nil || got.Hallucinated != nil || got.Logical != nil {
		t.Errorf("fields: got = %+v, wanted all nil", got)
	}
}

func TestStrategyOrder(t *testing.T) {
	// Direct parse wins over salvage: the structured object is adopted
	// wholesale, including keys salvage cannot recover.
	text := `{"accuracy": 3, "relevance": 2, "hallucinated": false, "logical": true, "issues": ["wrong totals"]}`
	got := Extract(text)
	if got == nil {
		t.Fatal("Extract returned nil")
	}
	if len(got.Issues) != 1 || got.Issues[0] != "wrong totals" {
		t.Errorf("issues: got = %v, wanted = [wrong totals]", got.Issues)
	}
}

func TestIsHallucinated(t *testing.T) {
	var nilJudgment *Judgment
	if nilJudgment.IsHallucinated() {
		t.Error("nil judgment: got = true, wanted = false")
	}
	if (&Judgment{}).IsHallucinated() {
		t.Error("absent flag: got = true, wanted = false")
	}
	if (&Judgment{Hallucinated: boolPtr(false)}).IsHallucinated() {
		t.Error("explicit false: got = true, wanted = false")
	}
	if !(&Judgment{Hallucinated: boolPtr(true)}).IsHallucinated() {
		t.Error("explicit true: got = false, wanted = true")
	}
}
