package usecase

import (
	"context"

	"github.com/minhtran/phimhub/internal/domain/catalog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Batch sizes: the number of upstream pages merged into one logical UI page.
// The two paths use independent constants; unifying them would change the
// pagination counts users see.
const (
	latestBatchSize = 2
	filterBatchSize = 6
	relatedLimit    = 12
)

// Fixed shortcut slugs for the landing-page rows.
const (
	actionGenreSlug   = "hanh-dong"
	horrorGenreSlug   = "kinh-di"
	animationTypeSlug = "hoat-hinh"
)

type CatalogRepository interface {
	FetchLatestPage(ctx context.Context, page int) (*catalog.UpstreamPage, error)
	FetchFilteredPage(ctx context.Context, page int, f catalog.Filter) (*catalog.UpstreamPage, error)
	FetchSearchPage(ctx context.Context, keyword string, page int) (*catalog.UpstreamPage, error)
	FetchGenrePage(ctx context.Context, genreSlug string, page int) (*catalog.UpstreamPage, error)
	FetchTypePage(ctx context.Context, typeSlug string, page int) (*catalog.UpstreamPage, error)
	FetchDetail(ctx context.Context, slug string) (*catalog.DetailResult, error)
	FetchCategories(ctx context.Context) ([]catalog.Tag, error)
	FetchCountries(ctx context.Context) ([]catalog.Tag, error)
}

// PageCache holds latest-movies page results keyed by logical UI page.
// Implementations must tolerate concurrent readers and writers; racing
// writers on the same page resolve by last write wins.
type PageCache interface {
	Get(ctx context.Context, page int) (*catalog.PageResult, bool)
	Set(ctx context.Context, page int, result *catalog.PageResult)
}

type CatalogUsecase struct {
	repo  CatalogRepository
	cache PageCache
}

func NewCatalogUsecase(repo CatalogRepository, cache PageCache) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
	}
}

// ListLatest returns one logical page of the unfiltered latest-movies
// listing. This is the only cached path: the filter space is unbounded, so
// everything else goes straight upstream.
func (u *CatalogUsecase) ListLatest(ctx context.Context, page int) (*catalog.PageResult, error) {
	if page < 1 {
		page = 1
	}

	if cached, ok := u.cache.Get(ctx, page); ok {
		return cached, nil
	}

	result, err := u.aggregate(ctx, page, latestBatchSize, func(ctx context.Context, upstreamPage int) (*catalog.UpstreamPage, error) {
		return u.repo.FetchLatestPage(ctx, upstreamPage)
	})
	if err != nil {
		return nil, err
	}

	u.cache.Set(ctx, page, result)
	return result, nil
}

// ListFiltered returns one logical page of the v1 listing with the given
// equality filters applied.
func (u *CatalogUsecase) ListFiltered(ctx context.Context, page int, f catalog.Filter) (*catalog.PageResult, error) {
	if page < 1 {
		page = 1
	}

	return u.aggregate(ctx, page, filterBatchSize, func(ctx context.Context, upstreamPage int) (*catalog.UpstreamPage, error) {
		return u.repo.FetchFilteredPage(ctx, upstreamPage, f)
	})
}

// Search returns one logical page of keyword search results. The search
// path never carries the listing filters.
func (u *CatalogUsecase) Search(ctx context.Context, keyword string, page int) (*catalog.PageResult, error) {
	if page < 1 {
		page = 1
	}

	return u.aggregate(ctx, page, filterBatchSize, func(ctx context.Context, upstreamPage int) (*catalog.UpstreamPage, error) {
		return u.repo.FetchSearchPage(ctx, keyword, upstreamPage)
	})
}

// GetDetail fetches a movie's full record and derives its related-movies
// list from the movie's first category. A movie without categories gets an
// empty related list, and a failed related lookup never fails the detail.
func (u *CatalogUsecase) GetDetail(ctx context.Context, slug string) (*catalog.DetailResult, error) {
	detail, err := u.repo.FetchDetail(ctx, slug)
	if err != nil {
		return nil, err
	}

	detail.Related = []catalog.MovieSummary{}
	if len(detail.Movie.Category) == 0 {
		return detail, nil
	}

	related, err := u.ListFiltered(ctx, 1, catalog.Filter{Category: detail.Movie.Category[0].Slug})
	if err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("related movies lookup failed")
		return detail, nil
	}

	for _, item := range related.Items {
		if item.Slug == slug {
			continue
		}
		detail.Related = append(detail.Related, item)
		if len(detail.Related) == relatedLimit {
			break
		}
	}
	return detail, nil
}

// HomeRows fetches the four landing-page rows concurrently. A failed row
// degrades to an empty list.
func (u *CatalogUsecase) HomeRows(ctx context.Context) *catalog.HomeRows {
	rows := &catalog.HomeRows{
		Latest:    []catalog.MovieSummary{},
		Action:    []catalog.MovieSummary{},
		Horror:    []catalog.MovieSummary{},
		Animation: []catalog.MovieSummary{},
	}

	p := pool.New()
	p.Go(func() {
		if page, err := u.repo.FetchLatestPage(ctx, 1); err == nil {
			rows.Latest = page.Items
		}
	})
	p.Go(func() {
		if page, err := u.repo.FetchGenrePage(ctx, actionGenreSlug, 1); err == nil {
			rows.Action = page.Items
		}
	})
	p.Go(func() {
		if page, err := u.repo.FetchGenrePage(ctx, horrorGenreSlug, 1); err == nil {
			rows.Horror = page.Items
		}
	})
	p.Go(func() {
		if page, err := u.repo.FetchTypePage(ctx, animationTypeSlug, 1); err == nil {
			rows.Animation = page.Items
		}
	})
	p.Wait()

	return rows
}

// Categories returns the category lookup table, empty on upstream failure.
func (u *CatalogUsecase) Categories(ctx context.Context) []catalog.Tag {
	tags, err := u.repo.FetchCategories(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("category lookup failed")
		return []catalog.Tag{}
	}
	return tags
}

// Countries returns the country lookup table, empty on upstream failure.
func (u *CatalogUsecase) Countries(ctx context.Context) []catalog.Tag {
	tags, err := u.repo.FetchCountries(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("country lookup failed")
		return []catalog.Tag{}
	}
	return tags
}
