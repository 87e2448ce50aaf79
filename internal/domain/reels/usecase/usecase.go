package usecase

import (
	"context"

	"github.com/minhtran/phimhub/internal/domain/catalog"
	"github.com/minhtran/phimhub/internal/domain/reels"
	"github.com/rs/zerolog/log"
)

// ClipStore lists the playable clip files and resolves their serve URLs.
type ClipStore interface {
	ListClipFiles(ctx context.Context) ([]string, error)
	ClipURL(ctx context.Context, file string) (string, error)
}

// ActorImageResolver resolves an actor name to a profile image URL.
type ActorImageResolver interface {
	ActorImage(ctx context.Context, name string) (string, error)
}

// DetailGetter fetches a movie detail by slug; used to resolve clip posters.
type DetailGetter interface {
	GetDetail(ctx context.Context, slug string) (*catalog.DetailResult, error)
}

type ReelUsecase struct {
	store   ClipStore
	actors  ActorImageResolver
	catalog DetailGetter
	table   map[string]reels.ClipInfo
}

func NewReelUsecase(store ClipStore, actors ActorImageResolver, catalog DetailGetter, table map[string]reels.ClipInfo) *ReelUsecase {
	return &ReelUsecase{
		store:   store,
		actors:  actors,
		catalog: catalog,
		table:   table,
	}
}

// ListReels returns every stored clip, enriched from the injected clip
// table where an entry exists. Enrichment lookups are best effort.
func (u *ReelUsecase) ListReels(ctx context.Context) ([]reels.Reel, error) {
	files, err := u.store.ListClipFiles(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]reels.Reel, 0, len(files))
	for _, file := range files {
		videoURL, err := u.store.ClipURL(ctx, file)
		if err != nil {
			log.Debug().Err(err).Str("file", file).Msg("clip url resolution failed")
			continue
		}

		reel := reels.Reel{VideoURL: videoURL}

		if info, ok := u.table[file]; ok {
			reel.ActorName = info.ActorName
			reel.MovieName = info.MovieName
			reel.MovieSlug = info.MovieSlug

			if image, err := u.actors.ActorImage(ctx, info.ActorName); err == nil {
				reel.ActorImage = image
			}

			if info.MovieSlug != "" {
				if detail, err := u.catalog.GetDetail(ctx, info.MovieSlug); err == nil {
					reel.PosterURL = detail.Movie.PosterURL
				}
			}
		}

		list = append(list, reel)
	}
	return list, nil
}
