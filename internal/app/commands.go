package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotels_merge/internal/domain"
)

// AggregateService fetches every supplier, normalizes each raw record through
// its adapter, and folds the results into a merged catalog.
type AggregateService struct {
	fetch     domain.Fetcher
	suppliers []domain.Supplier
}

func NewAggregateService(f domain.Fetcher, suppliers []domain.Supplier) *AggregateService {
	return &AggregateService{fetch: f, suppliers: suppliers}
}

// Snapshot produces the merged catalog for one run. Supplier fetches run in
// parallel (no shared state), but results are slotted by supplier index and
// folded sequentially in registry order: the merge rules are order-dependent.
// Any fetch or parse failure aborts the whole run with no partial result.
func (s *AggregateService) Snapshot(ctx context.Context) (*Catalog, error) {
	batches := make([][]domain.Hotel, len(s.suppliers))

	g, gctx := errgroup.WithContext(ctx)
	for i, sup := range s.suppliers {
		i, sup := i, sup
		g.Go(func() error {
			raws, err := s.fetch.Fetch(gctx, sup.Endpoint())
			if err != nil {
				return fmt.Errorf("fetch %s: %w", sup.Name(), err)
			}
			hotels := make([]domain.Hotel, 0, len(raws))
			for _, raw := range raws {
				h, perr := sup.Parse(raw)
				if perr != nil {
					return perr
				}
				hotels = append(hotels, h)
			}
			log.Debug().Str("supplier", sup.Name()).Int("records", len(hotels)).Msg("supplier fetched")
			batches[i] = hotels
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := NewCatalog()
	for _, batch := range batches {
		for _, h := range batch {
			cat.Add(h)
		}
	}
	return cat, nil
}
