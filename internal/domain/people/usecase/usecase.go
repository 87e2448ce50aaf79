package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/minhtran/phimhub/internal/domain/people"
	"github.com/rs/zerolog/log"
)

type PeopleRepository interface {
	SearchPerson(ctx context.Context, query string) ([]people.PersonSummary, error)
	GetPerson(ctx context.Context, id int64) (*people.PersonDetail, error)
	GetCombinedCredits(ctx context.Context, id int64) ([]people.Credit, error)
	ImageURL(profilePath string) string
}

type PeopleUsecase struct {
	repo PeopleRepository
}

func NewPeopleUsecase(repo PeopleRepository) *PeopleUsecase {
	return &PeopleUsecase{repo: repo}
}

// ResolveActor turns a free-text (usually slugified) actor name into a full
// profile: search, disambiguate by popularity, fetch detail and combined
// filmography. Any failed step collapses to ErrPersonNotFound.
func (u *PeopleUsecase) ResolveActor(ctx context.Context, name string) (*people.ActorProfile, error) {
	query := strings.ReplaceAll(name, "-", " ")

	hits, err := u.repo.SearchPerson(ctx, query)
	if err != nil {
		log.Debug().Err(err).Str("name", name).Msg("person search failed")
		return nil, people.ErrPersonNotFound
	}
	best, ok := mostPopular(hits)
	if !ok {
		return nil, people.ErrPersonNotFound
	}

	detail, err := u.repo.GetPerson(ctx, best.ID)
	if err != nil {
		log.Debug().Err(err).Int64("person_id", best.ID).Msg("person detail failed")
		return nil, people.ErrPersonNotFound
	}

	credits, err := u.repo.GetCombinedCredits(ctx, best.ID)
	if err != nil {
		log.Debug().Err(err).Int64("person_id", best.ID).Msg("combined credits failed")
		return nil, people.ErrPersonNotFound
	}

	works := make([]people.Credit, 0, len(credits))
	for _, credit := range credits {
		if credit.MediaType == "movie" || credit.MediaType == "tv" {
			works = append(works, credit)
		}
	}
	// Stable sort keeps upstream order between equal popularity scores.
	sort.SliceStable(works, func(i, j int) bool {
		return works[i].Popularity > works[j].Popularity
	})

	return &people.ActorProfile{
		Person:       *detail,
		DisplayName:  displayName(detail.Name, detail.AlsoKnownAs),
		ProfileImage: u.repo.ImageURL(detail.ProfilePath),
		Works:        works,
	}, nil
}

// ActorImage resolves a name to the top-popularity hit's profile image URL.
func (u *PeopleUsecase) ActorImage(ctx context.Context, name string) (string, error) {
	hits, err := u.repo.SearchPerson(ctx, name)
	if err != nil {
		return "", people.ErrPersonNotFound
	}
	best, ok := mostPopular(hits)
	if !ok || best.ProfilePath == "" {
		return "", people.ErrPersonNotFound
	}
	return u.repo.ImageURL(best.ProfilePath), nil
}

// mostPopular picks the hit with the highest popularity; the first highest
// wins on ties.
func mostPopular(hits []people.PersonSummary) (people.PersonSummary, bool) {
	if len(hits) == 0 {
		return people.PersonSummary{}, false
	}
	best := hits[0]
	for _, hit := range hits[1:] {
		if hit.Popularity > best.Popularity {
			best = hit
		}
	}
	return best, true
}

// displayName prefers the first alternate name containing an ASCII Latin
// letter over the canonical name. Presentation only.
func displayName(canonical string, alternates []string) string {
	for _, alt := range alternates {
		if hasLatinLetter(alt) {
			return alt
		}
	}
	return canonical
}

func hasLatinLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return true
		}
	}
	return false
}
