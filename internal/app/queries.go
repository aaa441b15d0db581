package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"hotels_merge/internal/domain"
)

// QueryService serves filtered merged snapshots, caching results per filter
// combination. A cache miss re-runs the full fetch-and-merge pipeline.
type QueryService struct {
	agg      *AggregateService
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(agg *AggregateService, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{agg: agg, cache: c, cacheTTL: ttl}
}

// Find returns the merged hotels matching the filters. Empty filter slices
// are wildcards for their dimension.
func (s *QueryService) Find(ctx context.Context, hotelIDs, destinationIDs []string) ([]domain.Hotel, error) {
	key := cacheKey(hotelIDs, destinationIDs)
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	cat, err := s.agg.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out = cat.Find(SetOf(hotelIDs), SetOf(destinationIDs))
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// cacheKey is stable under filter ordering so "a,b" and "b,a" share an entry.
func cacheKey(hotelIDs, destinationIDs []string) string {
	return "find:" + joinSorted(hotelIDs) + ":" + joinSorted(destinationIDs)
}

func joinSorted(tokens []string) string {
	vals := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			vals = append(vals, t)
		}
	}
	sort.Strings(vals)
	return strings.Join(vals, ",")
}
