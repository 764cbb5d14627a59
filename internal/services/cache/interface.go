package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fightpulse/combat-api/internal/services/search"
)

// Cache is a byte-value store with per-entry TTL. Search responses
// and entity payloads are stored serialized.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// Stats provides counters about cache usage
type Stats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Deletes   int64
	Evictions int64
	Size      int64
	MaxSize   int64
}

// StatsProvider is implemented by caches that track usage counters
type StatsProvider interface {
	Stats() Stats
}

// SearchKey derives a cache key from the query text and every active
// filter. Two queries share an entry only when text, limit, flags,
// kinds, categories, locations and date bounds all match. Filter
// order does not matter.
func SearchKey(q search.Query) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(strings.ToLower(q.Text))
	b.WriteString("|limit=")
	b.WriteString(strconv.Itoa(q.Limit))
	if !q.Fuzzy {
		b.WriteString("|fuzzy=0")
	}
	if !q.Highlight {
		b.WriteString("|highlight=0")
	}
	writeSorted(&b, "kinds", kindsToStrings(q.Kinds))
	writeSorted(&b, "categories", lowered(q.Categories))
	writeSorted(&b, "locations", lowered(q.Locations))
	if q.From != nil {
		b.WriteString("|from=")
		b.WriteString(q.From.UTC().Format(time.RFC3339))
	}
	if q.To != nil {
		b.WriteString("|to=")
		b.WriteString(q.To.UTC().Format(time.RFC3339))
	}
	return b.String()
}

// SuggestionKey derives a cache key for a suggestion lookup
func SuggestionKey(text string, limit int) string {
	return "suggest:" + strings.ToLower(text) + "|limit=" + strconv.Itoa(limit)
}

func writeSorted(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	b.WriteString("|")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(strings.Join(sorted, ","))
}

func kindsToStrings(kinds []search.Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

func lowered(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
