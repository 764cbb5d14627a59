package search

import (
	"context"
	"time"
)

// Kind identifies a searchable entity type
type Kind string

const (
	KindFighter Kind = "fighter"
	KindEvent   Kind = "event"
	KindNews    Kind = "news"
	KindClub    Kind = "club"
)

// AllKinds is the canonical kind order used for fan-out and suggestions
var AllKinds = []Kind{KindFighter, KindEvent, KindNews, KindClub}

// ParseKind parses a kind string, reporting whether it is recognized
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindFighter, KindEvent, KindNews, KindClub:
		return Kind(s), true
	}
	return "", false
}

// Query describes a validated cross-entity search request
type Query struct {
	Text       string
	Limit      int
	Fuzzy      bool
	Highlight  bool
	Kinds      []Kind
	Categories []string
	Locations  []string
	From       *time.Time
	To         *time.Time
}

// Lookup carries the per-kind parameters handed to the data source.
// The text is matched as a case-insensitive substring against the
// kind's displayable fields; filters map onto whichever of the kind's
// fields are relevant.
type Lookup struct {
	Text       string
	Locations  []string
	Categories []string
	From       *time.Time
	To         *time.Time
	Limit      int
}

// FighterRecord is a fighter candidate returned by the data source
type FighterRecord struct {
	ID          string
	Name        string
	Nickname    string
	Country     string
	WeightClass string
	ImageURL    string
}

// EventRecord is an event candidate returned by the data source
type EventRecord struct {
	ID        string
	Name      string
	City      string
	Country   string
	StartAt   *time.Time
	PosterURL string
}

// NewsRecord is a news candidate returned by the data source
type NewsRecord struct {
	ID        string
	Title     string
	Excerpt   string
	Category  string
	PublishAt *time.Time
	ImageURL  string
}

// ClubRecord is a club candidate returned by the data source
type ClubRecord struct {
	ID          string
	Name        string
	City        string
	Country     string
	Description string
	LogoURL     string
}

// Candidates holds the per-kind lookup results, in each kind's
// natural order, before ranking
type Candidates struct {
	Fighters []FighterRecord
	Events   []EventRecord
	News     []NewsRecord
	Clubs    []ClubRecord
}

// Result is a scored, display-ready search hit
type Result struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"type"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url"`
	Score       float64  `json:"score"`
	Highlights  []string `json:"highlights"`
}

// Suggestion is a lightweight autocomplete entry
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Kind Kind   `json:"type"`
}

// NameRef is a bare id/text pair used to build suggestions
type NameRef struct {
	ID   string
	Text string
}

// DataSource is the external record store the gateway fans out to.
// Implementations must exclude soft-deleted records.
type DataSource interface {
	FindFighters(ctx context.Context, l Lookup) ([]FighterRecord, error)
	FindEvents(ctx context.Context, l Lookup) ([]EventRecord, error)
	FindNews(ctx context.Context, l Lookup) ([]NewsRecord, error)
	FindClubs(ctx context.Context, l Lookup) ([]ClubRecord, error)

	// FindNames matches the kind's primary name/title field only
	FindNames(ctx context.Context, kind Kind, text string, limit int) ([]NameRef, error)
}

// Provider is the interface handlers consume
type Provider interface {
	Search(ctx context.Context, q Query) ([]Result, error)
	Suggest(ctx context.Context, text string, limit int) ([]Suggestion, error)
}
