// Package insights turns raw feedback text into the derived fields stored on
// a record: a normalized restatement of terse feedback and a rule-derived
// recommendation. Both functions are pure and total.
package insights

import (
	"strings"
	"unicode/utf8"
)

// normalizeThreshold is the trimmed length below which feedback is
// considered too terse and gets wrapped with a request for more context.
const normalizeThreshold = 20

// Normalize produces the "improved" text. Feedback shorter than the
// threshold is restated with a note that more detail would help;
// anything longer passes through unchanged.
func Normalize(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < normalizeThreshold {
		return "Customer feedback indicates: " + text + ". Additional context would be helpful."
	}
	return text
}

// rule pairs a keyword group with its recommendation. Rules are evaluated
// in table order and the first match wins; order is part of the contract.
type rule struct {
	keywords      []string
	advice        string
	appendContext bool
}

var rules = []rule{
	{
		keywords:      []string{"slow", "wait"},
		advice:        "Recommendation: Increase staff during peak hours. Consider implementing a queue management system.",
		appendContext: true,
	},
	{
		keywords: []string{"dirty", "clean"},
		advice:   "Recommendation: Implement more frequent cleaning schedules and conduct regular hygiene inspections.",
	},
	{
		keywords: []string{"rude", "unfriendly", "staff"},
		advice:   "Recommendation: Provide customer service training for staff and establish clear communication guidelines.",
	},
	{
		keywords: []string{"price", "expensive", "cheap"},
		advice:   "Recommendation: Review pricing strategy and consider offering value packages or loyalty programs.",
	},
	{
		keywords: []string{"food", "meal", "taste"},
		advice:   "Recommendation: Gather specific feedback about menu items and consider taste testing with focus groups.",
	},
	{
		keywords: []string{"long", "boring"},
		advice:   "Recommendation: Break sessions into shorter segments with interactive elements and regular breaks.",
	},
	{
		keywords: []string{"good", "great", "excellent"},
		advice:   "Positive feedback received! Continue maintaining these high standards and consider what's working well.",
	},
}

// fallbackAdvice is returned when no rule matches and no company context
// is available.
const fallbackAdvice = "Recommendation: Follow up with customer for more specific details. Consider implementing regular feedback sessions."

// Classify maps feedback text to a recommendation by ordered keyword
// matching. companyContext, when non-empty, is appended verbatim to the
// staffing rule and to the no-match fallback. Deterministic, never fails,
// always returns a non-empty string.
func Classify(text, companyContext string) string {
	lower := strings.ToLower(text)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				if r.appendContext && companyContext != "" {
					return r.advice + " " + companyContext
				}
				return r.advice
			}
		}
	}

	if companyContext != "" {
		return "Recommendation: Follow up with customer for more specific details. " + companyContext
	}
	return fallbackAdvice
}
