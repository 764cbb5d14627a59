package search

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/fightpulse/combat-api/api/types"
	"github.com/fightpulse/combat-api/internal/services/search"
)

const (
	minQueryLen      = 2
	maxQueryLen      = 100
	defaultLimit     = 20
	maxLimit         = 50
	minSuggestionLen = 1
	defaultSuggested = 10
	maxSuggested     = 20
)

// parseSearchQuery validates the GET /search parameters. It returns
// the validated query and the list of per-field issues; the query is
// only meaningful when issues is empty.
func parseSearchQuery(c *gin.Context) (search.Query, []types.Issue) {
	var issues []types.Issue

	text := strings.TrimSpace(c.Query("q"))
	if n := utf8.RuneCountInString(text); n < minQueryLen || n > maxQueryLen {
		issues = append(issues, types.Issue{
			Field:   "q",
			Message: "must be between 2 and 100 characters",
		})
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLimit {
			issues = append(issues, types.Issue{
				Field:   "limit",
				Message: "must be an integer between 1 and 50",
			})
		} else {
			limit = parsed
		}
	}

	fuzzy := parseBoolParam(c, "fuzzy", &issues)
	highlight := parseBoolParam(c, "highlight", &issues)

	// Unknown type values are dropped rather than rejected; an empty
	// result means every kind is searched
	var kinds []search.Kind
	for _, raw := range parseList(c.Query("type")) {
		if kind, ok := search.ParseKind(raw); ok {
			kinds = append(kinds, kind)
		}
	}

	from := parseTimeParam(c, "from", &issues)
	to := parseTimeParam(c, "to", &issues)

	return search.Query{
		Text:       text,
		Limit:      limit,
		Fuzzy:      fuzzy,
		Highlight:  highlight,
		Kinds:      kinds,
		Categories: parseList(c.Query("category")),
		Locations:  parseList(c.Query("location")),
		From:       from,
		To:         to,
	}, issues
}

// parseSuggestionQuery validates the GET /search/suggestions
// parameters
func parseSuggestionQuery(c *gin.Context) (string, int, []types.Issue) {
	var issues []types.Issue

	text := strings.TrimSpace(c.Query("q"))
	if n := utf8.RuneCountInString(text); n < minSuggestionLen || n > maxQueryLen {
		issues = append(issues, types.Issue{
			Field:   "q",
			Message: "must be between 1 and 100 characters",
		})
	}

	limit := defaultSuggested
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSuggested {
			issues = append(issues, types.Issue{
				Field:   "limit",
				Message: "must be an integer between 1 and 20",
			})
		} else {
			limit = parsed
		}
	}

	return text, limit, issues
}

// parseBoolParam reads an optional boolean parameter that defaults to
// true when absent
func parseBoolParam(c *gin.Context, name string, issues *[]types.Issue) bool {
	raw := c.Query(name)
	if raw == "" {
		return true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		*issues = append(*issues, types.Issue{
			Field:   name,
			Message: "must be a boolean",
		})
		return true
	}
	return value
}

// parseTimeParam reads an optional RFC3339 timestamp
func parseTimeParam(c *gin.Context, name string, issues *[]types.Issue) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		*issues = append(*issues, types.Issue{
			Field:   name,
			Message: "must be an RFC 3339 timestamp",
		})
		return nil
	}
	return &parsed
}

// parseList splits a comma-separated parameter, dropping empty values
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
