package search

import (
	"context"
	"log"
	"math"
	"sync"

	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// minSuggestionQuota mirrors minPerKindLimit for the lighter
// suggestion lookups
const minSuggestionQuota = 3

// suggest runs the per-kind name lookups and concatenates them in the
// fixed kind order. Suggestions are meant to be skimmed, not ranked,
// so there is no cross-kind re-ranking.
func (s *Service) suggest(ctx context.Context, text string, limit int) ([]Suggestion, error) {
	quota := int(math.Ceil(float64(limit) / float64(len(AllKinds))))
	if quota < minSuggestionQuota {
		quota = minSuggestionQuota
	}

	var (
		refs = make([][]NameRef, len(AllKinds))
		errs = make([]error, len(AllKinds))
		wg   sync.WaitGroup
	)

	for i, kind := range AllKinds {
		wg.Add(1)
		go func(i int, kind Kind) {
			defer wg.Done()

			lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
			defer cancel()

			names, err := s.source.FindNames(lookupCtx, kind, text, quota)
			if err != nil {
				log.Printf("[WARN] %s name lookup failed for %q: %v", kind, text, err)
				errs[i] = err
				return
			}
			refs[i] = names
		}(i, kind)
	}

	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(AllKinds) {
		return nil, apperrors.Wrap(errs[0], apperrors.ErrCodeExternalService, "all suggestion lookups failed")
	}

	suggestions := make([]Suggestion, 0, limit)
	for i, kind := range AllKinds {
		for _, ref := range refs[i] {
			suggestions = append(suggestions, Suggestion{ID: ref.ID, Text: ref.Text, Kind: kind})
		}
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
