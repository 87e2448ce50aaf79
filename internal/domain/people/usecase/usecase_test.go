package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/minhtran/phimhub/internal/domain/people"
)

type fakePeopleRepo struct {
	searchFn  func(query string) ([]people.PersonSummary, error)
	personFn  func(id int64) (*people.PersonDetail, error)
	creditsFn func(id int64) ([]people.Credit, error)

	searchQueries []string
}

func (f *fakePeopleRepo) SearchPerson(ctx context.Context, query string) ([]people.PersonSummary, error) {
	f.searchQueries = append(f.searchQueries, query)
	return f.searchFn(query)
}

func (f *fakePeopleRepo) GetPerson(ctx context.Context, id int64) (*people.PersonDetail, error) {
	return f.personFn(id)
}

func (f *fakePeopleRepo) GetCombinedCredits(ctx context.Context, id int64) ([]people.Credit, error) {
	return f.creditsFn(id)
}

func (f *fakePeopleRepo) ImageURL(profilePath string) string {
	if profilePath == "" {
		return ""
	}
	return "https://img.example" + profilePath
}

func TestResolveActorSlugBecomesQuery(t *testing.T) {
	repo := &fakePeopleRepo{
		searchFn: func(query string) ([]people.PersonSummary, error) {
			return []people.PersonSummary{{ID: 1, Name: "Kim Ji-won", Popularity: 10}}, nil
		},
		personFn: func(id int64) (*people.PersonDetail, error) {
			return &people.PersonDetail{ID: id, Name: "Kim Ji-won"}, nil
		},
		creditsFn: func(id int64) ([]people.Credit, error) { return nil, nil },
	}
	uc := NewPeopleUsecase(repo)

	if _, err := uc.ResolveActor(context.Background(), "kim-ji-won"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.searchQueries) != 1 || repo.searchQueries[0] != "kim ji won" {
		t.Fatalf("expected hyphens replaced by spaces, searched %v", repo.searchQueries)
	}
}

func TestResolveActorPicksMostPopular(t *testing.T) {
	repo := &fakePeopleRepo{
		searchFn: func(query string) ([]people.PersonSummary, error) {
			return []people.PersonSummary{
				{ID: 1, Name: "Other Kim", Popularity: 3.2},
				{ID: 2, Name: "Kim Ji-won", Popularity: 41.7},
				{ID: 3, Name: "Another Kim", Popularity: 12.0},
			}, nil
		},
		personFn: func(id int64) (*people.PersonDetail, error) {
			if id != 2 {
				t.Fatalf("expected detail fetch for id 2, got %d", id)
			}
			return &people.PersonDetail{ID: id, Name: "Kim Ji-won"}, nil
		},
		creditsFn: func(id int64) ([]people.Credit, error) { return nil, nil },
	}
	uc := NewPeopleUsecase(repo)

	profile, err := uc.ResolveActor(context.Background(), "kim-ji-won")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Person.ID != 2 {
		t.Errorf("expected person 2, got %d", profile.Person.ID)
	}
}

func TestMostPopularFirstWinsTies(t *testing.T) {
	hits := []people.PersonSummary{
		{ID: 11, Popularity: 5},
		{ID: 22, Popularity: 5},
	}
	best, ok := mostPopular(hits)
	if !ok || best.ID != 11 {
		t.Fatalf("expected first hit to win the tie, got %+v ok=%v", best, ok)
	}
}

func TestResolveActorDisplayName(t *testing.T) {
	cases := []struct {
		name       string
		canonical  string
		alternates []string
		want       string
	}{
		{"latin alternate wins", "김지원", []string{"김지원", "Kim Ji-won", "지원"}, "Kim Ji-won"},
		{"first latin alternate wins", "김수현", []string{"Kim Soo-hyun", "Kim Soo Hyun"}, "Kim Soo-hyun"},
		{"no latin alternate keeps canonical", "김지원", []string{"김지원", "지원"}, "김지원"},
		{"no alternates keeps canonical", "Kim Ji-won", nil, "Kim Ji-won"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := displayName(tc.canonical, tc.alternates); got != tc.want {
				t.Errorf("displayName(%q, %v) = %q, want %q", tc.canonical, tc.alternates, got, tc.want)
			}
		})
	}
}

func TestResolveActorFiltersAndSortsWorks(t *testing.T) {
	repo := &fakePeopleRepo{
		searchFn: func(query string) ([]people.PersonSummary, error) {
			return []people.PersonSummary{{ID: 1, Popularity: 10}}, nil
		},
		personFn: func(id int64) (*people.PersonDetail, error) {
			return &people.PersonDetail{ID: id, Name: "Kim Ji-won"}, nil
		},
		creditsFn: func(id int64) ([]people.Credit, error) {
			return []people.Credit{
				{MediaType: "movie", Title: "Low", Popularity: 2},
				{MediaType: "person", Title: "Dropped"},
				{MediaType: "tv", Name: "High", Popularity: 50},
				{MediaType: "movie", Title: "EqualA", Popularity: 7},
				{MediaType: "tv", Name: "EqualB", Popularity: 7},
			}, nil
		},
	}
	uc := NewPeopleUsecase(repo)

	profile, err := uc.ResolveActor(context.Background(), "kim-ji-won")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile.Works) != 4 {
		t.Fatalf("expected non-movie/tv credits dropped, got %d works", len(profile.Works))
	}
	if profile.Works[0].Name != "High" {
		t.Errorf("expected highest popularity first, got %+v", profile.Works[0])
	}
	// equal popularity keeps the upstream order
	if profile.Works[1].Title != "EqualA" || profile.Works[2].Name != "EqualB" {
		t.Errorf("stable sort broke equal-popularity order: %+v", profile.Works)
	}
	if profile.Works[3].Title != "Low" {
		t.Errorf("expected lowest popularity last, got %+v", profile.Works[3])
	}
}

func TestResolveActorFailuresCollapse(t *testing.T) {
	boom := errors.New("tmdb down")

	cases := []struct {
		name string
		repo *fakePeopleRepo
	}{
		{"search error", &fakePeopleRepo{
			searchFn: func(string) ([]people.PersonSummary, error) { return nil, boom },
		}},
		{"empty search", &fakePeopleRepo{
			searchFn: func(string) ([]people.PersonSummary, error) { return nil, nil },
		}},
		{"detail error", &fakePeopleRepo{
			searchFn: func(string) ([]people.PersonSummary, error) {
				return []people.PersonSummary{{ID: 1, Popularity: 1}}, nil
			},
			personFn: func(int64) (*people.PersonDetail, error) { return nil, boom },
		}},
		{"credits error", &fakePeopleRepo{
			searchFn: func(string) ([]people.PersonSummary, error) {
				return []people.PersonSummary{{ID: 1, Popularity: 1}}, nil
			},
			personFn:  func(id int64) (*people.PersonDetail, error) { return &people.PersonDetail{ID: id}, nil },
			creditsFn: func(int64) ([]people.Credit, error) { return nil, boom },
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPeopleUsecase(tc.repo)
			_, err := uc.ResolveActor(context.Background(), "someone")
			if !errors.Is(err, people.ErrPersonNotFound) {
				t.Fatalf("expected ErrPersonNotFound, got %v", err)
			}
		})
	}
}

func TestActorImage(t *testing.T) {
	repo := &fakePeopleRepo{
		searchFn: func(query string) ([]people.PersonSummary, error) {
			return []people.PersonSummary{
				{ID: 1, Popularity: 2, ProfilePath: "/low.jpg"},
				{ID: 2, Popularity: 9, ProfilePath: "/kjw.jpg"},
			}, nil
		},
	}
	uc := NewPeopleUsecase(repo)

	image, err := uc.ActorImage(context.Background(), "Kim Ji Won")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if image != "https://img.example/kjw.jpg" {
		t.Errorf("expected most popular hit's image, got %q", image)
	}
}

func TestActorImageNoProfilePath(t *testing.T) {
	repo := &fakePeopleRepo{
		searchFn: func(query string) ([]people.PersonSummary, error) {
			return []people.PersonSummary{{ID: 1, Popularity: 9}}, nil
		},
	}
	uc := NewPeopleUsecase(repo)

	if _, err := uc.ActorImage(context.Background(), "Someone"); !errors.Is(err, people.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound when top hit has no image, got %v", err)
	}
}
