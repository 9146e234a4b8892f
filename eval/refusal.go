/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import (
	"regexp"
	"strings"
)

// refusalPatterns match responses that decline to answer. Matching any of
// them short-circuits the whole pipeline: a refusal must never be re-scored
// upward by a lenient judge.
var refusalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i don'?t know`),
	regexp.MustCompile(`cannot determine`),
	regexp.MustCompile(`no information available`),
	regexp.MustCompile(`unable to find`),
	regexp.MustCompile(`not enough context`),
	regexp.MustCompile(`data does not contain`),
}

// refusalIssue is the issue recorded on every NO_ANSWER result.
const refusalIssue = "Model refused to answer or said 'I don't know'"

// isRefusal reports whether the response is a refusal or non-answer.
func isRefusal(response string) bool {
	lower := strings.ToLower(response)
	for _, p := range refusalPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
