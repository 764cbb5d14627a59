package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Scoring constants. The caps keep the match tiers strictly ordered:
// an exact match always outranks substring containment, which always
// outranks partial token overlap. Tunable, but changing them changes
// wire-visible scores.
const (
	substringCap    = 0.9
	substringOffset = 0.2
	tokenOverlapCap = 0.7

	maxHighlights    = 5
	highlightContext = 25
)

// Score computes the match quality of a candidate's text fields
// against the query, in [0,1] rounded to 3 decimals. A candidate's
// score is the best contribution across its fields, so a strong match
// on any one field wins. Empty fields are skipped.
func Score(fields []string, query string) float64 {
	normalizedQuery := strings.ToLower(query)
	best := 0.0

	for _, field := range fields {
		if field == "" {
			continue
		}
		normalizedField := strings.ToLower(field)

		if normalizedField == normalizedQuery {
			best = 1.0
			break
		}

		if strings.Contains(normalizedField, normalizedQuery) {
			ratio := float64(len(normalizedQuery)) / float64(len(normalizedField))
			best = math.Max(best, math.Min(substringCap, ratio+substringOffset))
			continue
		}

		tokens := strings.Fields(normalizedQuery)
		if len(tokens) == 0 {
			continue
		}
		matched := 0
		for _, token := range tokens {
			if strings.Contains(normalizedField, token) {
				matched++
			}
		}
		if matched > 0 {
			overlap := float64(matched) / float64(len(tokens))
			best = math.Max(best, math.Min(tokenOverlapCap, overlap))
		}
	}

	return math.Round(best*1000) / 1000
}

// Highlights extracts up to maxHighlights de-duplicated snippets
// around case-insensitive occurrences of the query, with up to
// highlightContext characters of context on each side.
func Highlights(fields []string, query string, enabled bool) []string {
	if !enabled {
		return []string{}
	}

	context := strconv.Itoa(highlightContext)
	pattern, err := regexp.Compile(
		"(?i)(.{0," + context + "})(" + regexp.QuoteMeta(query) + ")(.{0," + context + "})",
	)
	if err != nil {
		return []string{}
	}

	seen := make(map[string]struct{})
	highlights := []string{}

	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, match := range pattern.FindAllString(field, -1) {
			snippet := strings.TrimSpace(match)
			if _, dup := seen[snippet]; dup {
				continue
			}
			seen[snippet] = struct{}{}
			highlights = append(highlights, snippet)
			if len(highlights) == maxHighlights {
				return highlights
			}
		}
	}

	return highlights
}
