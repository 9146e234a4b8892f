/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// firstNumberPattern finds the first decimal number in a response after
// thousands separators have been stripped.
var firstNumberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// checkPatterns runs the deterministic, non-AI validation criteria and
// records their outcome on the result.
//
// Required and forbidden substrings are the hard checks: they alone decide
// PatternChecksPassed. The regex, numeric-range, and custom-validator
// checks are advisory and only contribute issue text. That asymmetry is
// intentional; callers depend on it.
func checkPatterns(spec *QuerySpec, response string, result *EvaluationResult) {
	lower := strings.ToLower(response)

	for _, required := range spec.MustContain {
		if strings.Contains(lower, strings.ToLower(required)) {
			result.ContainsRequired = append(result.ContainsRequired, required)
		} else {
			result.MissingRequired = append(result.MissingRequired, required)
			result.Issues = append(result.Issues, fmt.Sprintf("Missing required term: '%s'", required))
		}
	}

	for _, forbidden := range spec.MustNotContain {
		if strings.Contains(lower, strings.ToLower(forbidden)) {
			result.ContainsForbidden = append(result.ContainsForbidden, forbidden)
			result.Issues = append(result.Issues, fmt.Sprintf("Contains forbidden term: '%s'", forbidden))
		}
	}

	if spec.MustContainPattern != "" {
		// Compilation already validated by QuerySpec.Validate.
		if p, err := regexp.Compile("(?i)" + spec.MustContainPattern); err == nil && !p.MatchString(response) {
			result.Issues = append(result.Issues, fmt.Sprintf("Missing required pattern: %s", spec.MustContainPattern))
		}
	}

	if r := spec.ExpectedNumberRange; r != nil {
		checkNumberRange(r, response, result)
	}

	if spec.CustomValidator != nil {
		runCustomValidator(spec.CustomValidator, response, result)
	}

	result.PatternChecksPassed = len(result.MissingRequired) == 0 && len(result.ContainsForbidden) == 0
}

// checkNumberRange extracts the first number from the response and checks
// it against the expected range. A response with no parseable number is
// silently ignored; this is a soft check.
func checkNumberRange(r *NumberRange, response string, result *EvaluationResult) {
	stripped := strings.ReplaceAll(response, ",", "")
	match := firstNumberPattern.FindString(stripped)
	if match == "" {
		return
	}
	found, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return
	}
	if found < r.Min || found > r.Max {
		result.Issues = append(result.Issues,
			fmt.Sprintf("Number %g outside expected range [%g, %g]", found, r.Min, r.Max))
	}
}

// runCustomValidator invokes the caller-supplied predicate, converting a
// panic into an issue so a buggy validator cannot abort the batch.
func runCustomValidator(validator func(string) bool, response string, result *EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Issues = append(result.Issues, fmt.Sprintf("Custom validator error: %v", r))
		}
	}()
	if !validator(response) {
		result.Issues = append(result.Issues, "Custom validation failed")
	}
}
