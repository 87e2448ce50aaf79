package usecase

import (
	"context"

	"github.com/minhtran/phimhub/internal/domain/catalog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// fetchFunc fetches a single upstream page in upstream-native numbering.
type fetchFunc func(ctx context.Context, upstreamPage int) (*catalog.UpstreamPage, error)

// aggregate fans out batchSize concurrent fetches for the upstream pages
// backing one logical UI page and merges the results.
//
// The merge order is ascending upstream page, independent of fetch
// completion order: every fetch writes into its own slot and the slots are
// concatenated after the join. A failed fetch contributes zero items and is
// skipped when deriving pagination; only a batch where every fetch failed
// becomes an error. Pagination comes from the last successful slot:
// logical total pages = ceil(upstream total pages / batchSize).
func (u *CatalogUsecase) aggregate(ctx context.Context, uiPage, batchSize int, fetch fetchFunc) (*catalog.PageResult, error) {
	startUpstream := (uiPage-1)*batchSize + 1

	chunks := make([]*catalog.UpstreamPage, batchSize)
	p := pool.New()
	for i := 0; i < batchSize; i++ {
		slot := i
		upstreamPage := startUpstream + i
		p.Go(func() {
			chunk, err := fetch(ctx, upstreamPage)
			if err != nil {
				log.Debug().Err(err).Int("upstream_page", upstreamPage).Msg("upstream fetch failed")
				return
			}
			chunks[slot] = chunk
		})
	}
	p.Wait()

	items := []catalog.MovieSummary{}
	upstreamTotalPages := -1
	for _, chunk := range chunks {
		if chunk == nil {
			continue
		}
		items = append(items, chunk.Items...)
		upstreamTotalPages = chunk.TotalPages
	}

	if upstreamTotalPages < 0 {
		return nil, catalog.ErrAllFetchesFailed
	}

	return &catalog.PageResult{
		Items: items,
		Pagination: catalog.Pagination{
			CurrentPage: uiPage,
			TotalPages:  (upstreamTotalPages + batchSize - 1) / batchSize,
		},
	}, nil
}
