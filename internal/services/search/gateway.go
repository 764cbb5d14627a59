package search

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// minPerKindLimit guarantees every active kind a useful sample even
// when the overall limit is small
const minPerKindLimit = 5

// Gateway fans a query out to one bounded lookup per active kind.
// Lookups run concurrently; a failed kind contributes zero candidates
// instead of failing the whole request.
type Gateway struct {
	source        DataSource
	lookupTimeout time.Duration
}

// NewGateway creates a gateway over the given data source
func NewGateway(source DataSource, lookupTimeout time.Duration) *Gateway {
	if lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
	}
	return &Gateway{source: source, lookupTimeout: lookupTimeout}
}

// Search issues the per-kind lookups and collects their candidates.
// It returns an error only when every active kind's lookup failed.
func (g *Gateway) Search(ctx context.Context, q Query) (*Candidates, error) {
	kinds := effectiveKinds(q.Kinds)
	lookup := Lookup{
		Text:       q.Text,
		Locations:  q.Locations,
		Categories: q.Categories,
		From:       q.From,
		To:         q.To,
		Limit:      perKindLimit(q.Limit, len(kinds)),
	}

	var (
		candidates Candidates
		errs       = make([]error, len(kinds))
		wg         sync.WaitGroup
	)

	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind Kind) {
			defer wg.Done()

			lookupCtx, cancel := context.WithTimeout(ctx, g.lookupTimeout)
			defer cancel()

			// Each goroutine writes only its own kind's slot, so no
			// locking is needed around the candidate slices.
			var err error
			switch kind {
			case KindFighter:
				candidates.Fighters, err = g.source.FindFighters(lookupCtx, lookup)
			case KindEvent:
				candidates.Events, err = g.source.FindEvents(lookupCtx, lookup)
			case KindNews:
				candidates.News, err = g.source.FindNews(lookupCtx, lookup)
			case KindClub:
				candidates.Clubs, err = g.source.FindClubs(lookupCtx, lookup)
			}

			if err != nil {
				log.Printf("[WARN] %s lookup failed for %q: %v", kind, q.Text, err)
				errs[i] = err
			}
		}(i, kind)
	}

	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(kinds) {
		return nil, apperrors.Wrap(errs[0], apperrors.ErrCodeExternalService, "all entity lookups failed")
	}

	return &candidates, nil
}

// effectiveKinds resolves the requested kind set. Unrecognized values
// are dropped upstream; an empty set degrades to searching everything
// rather than searching nothing.
func effectiveKinds(requested []Kind) []Kind {
	if len(requested) == 0 {
		return AllKinds
	}

	seen := make(map[Kind]struct{}, len(requested))
	kinds := make([]Kind, 0, len(requested))
	for _, kind := range requested {
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return AllKinds
	}
	return kinds
}

// perKindLimit splits the overall limit across active kinds, with a
// floor so small limits still return a sample from every kind
func perKindLimit(overall, kindCount int) int {
	if kindCount <= 0 {
		kindCount = len(AllKinds)
	}
	quota := int(math.Ceil(float64(overall) / float64(kindCount)))
	if quota < minPerKindLimit {
		return minPerKindLimit
	}
	return quota
}
