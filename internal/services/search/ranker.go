package search

import (
	"sort"
	"strings"
	"time"
)

// Rank scores every candidate, assembles its display fields, merges
// the per-kind lists into one relevance-ordered list and truncates it
// to the query's overall limit. The sort is stable: equal scores keep
// the fan-out's per-kind order, which itself preserves each kind's
// natural ordering.
func Rank(candidates *Candidates, q Query) []Result {
	results := make([]Result, 0,
		len(candidates.Fighters)+len(candidates.Events)+len(candidates.News)+len(candidates.Clubs))

	for _, fighter := range candidates.Fighters {
		fields := []string{fighter.Name, fighter.Nickname, fighter.Country}
		result := Result{
			ID:         fighter.ID,
			Kind:       KindFighter,
			Title:      fighter.Name,
			URL:        "/fighters/" + fighter.ID,
			Score:      Score(fields, q.Text),
			Highlights: Highlights(fields, q.Text, q.Highlight),
		}
		if fighter.Nickname != "" {
			result.Subtitle = fighter.Nickname
		} else if fighter.Country != "" {
			result.Subtitle = fighter.Country
		}
		if fighter.WeightClass != "" {
			result.Description = "Weight class: " + fighter.WeightClass
		}
		result.Image = fighter.ImageURL
		results = append(results, result)
	}

	for _, event := range candidates.Events {
		fields := []string{event.Name, event.City, event.Country}
		result := Result{
			ID:         event.ID,
			Kind:       KindEvent,
			Title:      event.Name,
			Subtitle:   joinPlace(event.City, event.Country),
			URL:        "/events/" + event.ID,
			Score:      Score(fields, q.Text),
			Highlights: Highlights(fields, q.Text, q.Highlight),
		}
		if event.StartAt != nil {
			result.Description = "Starts: " + event.StartAt.UTC().Format(time.RFC3339)
		}
		result.Image = event.PosterURL
		results = append(results, result)
	}

	for _, article := range candidates.News {
		fields := []string{article.Title, article.Excerpt, article.Category}
		result := Result{
			ID:          article.ID,
			Kind:        KindNews,
			Title:       article.Title,
			Subtitle:    article.Category,
			Description: article.Excerpt,
			Image:       article.ImageURL,
			URL:         "/news/" + article.ID,
			Score:       Score(fields, q.Text),
			Highlights:  Highlights(fields, q.Text, q.Highlight),
		}
		results = append(results, result)
	}

	for _, club := range candidates.Clubs {
		fields := []string{club.Name, club.City, club.Country}
		result := Result{
			ID:          club.ID,
			Kind:        KindClub,
			Title:       club.Name,
			Subtitle:    joinPlace(club.City, club.Country),
			Description: club.Description,
			Image:       club.LogoURL,
			URL:         "/clubs/" + club.ID,
			Score:       Score(fields, q.Text),
			Highlights:  Highlights(fields, q.Text, q.Highlight),
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results
}

func joinPlace(city, country string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
