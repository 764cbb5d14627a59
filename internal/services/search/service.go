package search

import (
	"context"
	"time"
)

// Service coordinates the fan-out gateway and the ranker. It is
// stateless: each query is validated upstream, resolved, and
// discarded.
type Service struct {
	source        DataSource
	gateway       *Gateway
	lookupTimeout time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithLookupTimeout bounds each per-kind data source call
func WithLookupTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.lookupTimeout = timeout
		}
	}
}

// NewService creates a search service over the given data source
func NewService(source DataSource, opts ...Option) *Service {
	s := &Service{
		source:        source,
		lookupTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gateway = NewGateway(source, s.lookupTimeout)
	return s
}

// Search resolves a query into a relevance-ordered result list
func (s *Service) Search(ctx context.Context, q Query) ([]Result, error) {
	candidates, err := s.gateway.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return Rank(candidates, q), nil
}

// Suggest returns short name/title completions for the given text
func (s *Service) Suggest(ctx context.Context, text string, limit int) ([]Suggestion, error) {
	return s.suggest(ctx, text, limit)
}
