package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	candidates := &Candidates{
		Fighters: []FighterRecord{{ID: "f1", Name: "Belgrade Warrior"}},        // 8/16+0.2 = 0.7
		Events:   []EventRecord{{ID: "e1", Name: "Belgrade Fight Night"}},      // 8/20+0.2 = 0.6
		News:     []NewsRecord{{ID: "n1", Title: "Belgrade"}},                  // exact = 1.0
		Clubs:    []ClubRecord{{ID: "c1", Name: "Belgrade Combat Club"}},       // 8/20+0.2 = 0.6
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 4)

	assert.Equal(t, "n1", results[0].ID)
	assert.Equal(t, "f1", results[1].ID)
	// Equal scores keep fan-out order: events come before clubs
	assert.Equal(t, "e1", results[2].ID)
	assert.Equal(t, "c1", results[3].ID)

	assert.InDelta(t, 1.0, results[0].Score, 0.0001)
	assert.InDelta(t, 0.7, results[1].Score, 0.0001)
	assert.InDelta(t, 0.6, results[2].Score, 0.0001)
	assert.InDelta(t, 0.6, results[3].Score, 0.0001)
}

func TestRankCrossesEntityKinds(t *testing.T) {
	// A strong news match must outrank a weak fighter match
	candidates := &Candidates{
		Fighters: []FighterRecord{{ID: "f1", Name: "The Belgrade Heavyweight Contender"}},
		News:     []NewsRecord{{ID: "n1", Title: "Belgrade"}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 2)
	assert.Equal(t, KindNews, results[0].Kind)
	assert.Equal(t, KindFighter, results[1].Kind)
}

func TestRankTruncatesToLimit(t *testing.T) {
	candidates := &Candidates{
		Fighters: []FighterRecord{
			{ID: "f1", Name: "Belgrade One"},
			{ID: "f2", Name: "Belgrade Two"},
			{ID: "f3", Name: "Belgrade Three"},
		},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 2})
	assert.Len(t, results, 2)
}

func TestRankFighterPresentation(t *testing.T) {
	candidates := &Candidates{
		Fighters: []FighterRecord{{
			ID:          "f1",
			Name:        "Belgrade Warrior",
			Nickname:    "The Hammer",
			Country:     "Serbia",
			WeightClass: "Heavyweight",
			ImageURL:    "https://cdn.example.com/f1.jpg",
		}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20, Highlight: true})
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, KindFighter, result.Kind)
	assert.Equal(t, "Belgrade Warrior", result.Title)
	assert.Equal(t, "The Hammer", result.Subtitle)
	assert.Equal(t, "Weight class: Heavyweight", result.Description)
	assert.Equal(t, "https://cdn.example.com/f1.jpg", result.Image)
	assert.Equal(t, "/fighters/f1", result.URL)
	assert.NotEmpty(t, result.Highlights)
}

func TestRankFighterSubtitleFallsBackToCountry(t *testing.T) {
	candidates := &Candidates{
		Fighters: []FighterRecord{{ID: "f1", Name: "Belgrade Warrior", Country: "Serbia"}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 1)
	assert.Equal(t, "Serbia", results[0].Subtitle)
}

func TestRankEventPresentation(t *testing.T) {
	startAt := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	candidates := &Candidates{
		Events: []EventRecord{{
			ID:      "e1",
			Name:    "Belgrade Fight Night",
			City:    "Belgrade",
			Country: "Serbia",
			StartAt: &startAt,
		}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 1)
	assert.Equal(t, "Belgrade, Serbia", results[0].Subtitle)
	assert.Equal(t, "Starts: 2026-03-14T20:00:00Z", results[0].Description)
	assert.Equal(t, "/events/e1", results[0].URL)
}

func TestRankOmitsEmptyDisplayFields(t *testing.T) {
	candidates := &Candidates{
		Clubs: []ClubRecord{{ID: "c1", Name: "Belgrade Combat Club"}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Subtitle)
	assert.Empty(t, results[0].Description)
	assert.Empty(t, results[0].Image)
}

func TestRankNewsPresentation(t *testing.T) {
	candidates := &Candidates{
		News: []NewsRecord{{
			ID:       "n1",
			Title:    "Belgrade MMA Update",
			Excerpt:  "A roundup of this week's fights.",
			Category: "mma",
		}},
	}

	results := Rank(candidates, Query{Text: "Belgrade", Limit: 20})
	require.Len(t, results, 1)
	assert.Equal(t, "mma", results[0].Subtitle)
	assert.Equal(t, "A roundup of this week's fights.", results[0].Description)
	assert.Equal(t, "/news/n1", results[0].URL)
}
