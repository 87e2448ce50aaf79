package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minhtran/phimhub/internal/domain/catalog"
)

func newTestClient(handler http.Handler) (*OphimClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewOphimClient(server.URL, 5*time.Second), server
}

func TestFetchLatestPageFlatEnvelope(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/danh-sach/phim-moi-cap-nhat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "3" {
			t.Errorf("expected page=3, got %s", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{
			"status": true,
			"msg": "done",
			"items": [
				{"_id": "a1", "name": "Phim A", "slug": "phim-a", "thumb_url": "a.jpg", "year": 2024,
				 "category": [{"name": "Hành Động", "slug": "hanh-dong"}],
				 "country": [{"name": "Hàn Quốc", "slug": "han-quoc"}]},
				{"_id": "b2", "name": "Phim B", "slug": "phim-b", "year": 2023}
			],
			"pagination": {"currentPage": 3, "totalPages": 713}
		}`))
	}))
	defer server.Close()

	page, err := client.FetchLatestPage(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].Slug != "phim-a" || page.Items[0].Year != 2024 {
		t.Errorf("first item decoded wrong: %+v", page.Items[0])
	}
	if len(page.Items[0].Category) != 1 || page.Items[0].Category[0].Slug != "hanh-dong" {
		t.Errorf("category tags decoded wrong: %+v", page.Items[0].Category)
	}
	if page.CurrentPage != 3 || page.TotalPages != 713 {
		t.Errorf("pagination decoded wrong: %+v", page)
	}
}

// Field matching is case-insensitive and absent optional fields default.
func TestFetchLatestPageLenientDecoding(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Items": [{"Name": "Phim C", "SLUG": "phim-c"}],
			"Pagination": {"CurrentPage": 1, "TotalPages": 9}
		}`))
	}))
	defer server.Close()

	page, err := client.FetchLatestPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "phim-c" {
		t.Fatalf("case-insensitive decode failed: %+v", page.Items)
	}
	if page.Items[0].Year != 0 || page.Items[0].PosterURL != "" {
		t.Errorf("absent fields should default, got %+v", page.Items[0])
	}
	if page.TotalPages != 9 {
		t.Errorf("expected 9 total pages, got %d", page.TotalPages)
	}
}

func TestFetchFilteredPageV1Envelope(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/danh-sach/phim-moi-cap-nhat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("category") != "hanh-dong" || q.Get("country") != "han-quoc" || q.Get("year") != "2024" {
			t.Errorf("missing filter params: %v", q)
		}
		if q.Get("type") != "series" || q.Get("quality") != "HD" || q.Get("lang") != "vietsub" {
			t.Errorf("missing extended filter params: %v", q)
		}
		w.Write([]byte(`{
			"status": "success",
			"msg": "",
			"data": {
				"items": [{"_id": "x", "name": "Phim X", "slug": "phim-x"}],
				"params": {
					"pagination": {"totalItems": 355, "totalItemsPerPage": 24, "currentPage": 2, "pageRanges": 5}
				}
			}
		}`))
	}))
	defer server.Close()

	page, err := client.FetchFilteredPage(context.Background(), 2, catalog.Filter{
		Category: "hanh-dong",
		Country:  "han-quoc",
		Year:     "2024",
		Type:     "series",
		Quality:  "HD",
		Lang:     "vietsub",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 1 || page.Items[0].Slug != "phim-x" {
		t.Fatalf("v1 items decoded wrong: %+v", page.Items)
	}
	// ceil(355/24) = 15, derived at read time
	if page.TotalPages != 15 {
		t.Errorf("expected derived total pages 15, got %d", page.TotalPages)
	}
	if page.CurrentPage != 2 {
		t.Errorf("expected current page 2, got %d", page.CurrentPage)
	}
}

func TestFetchFilteredPageOmitsEmptyFilters(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for _, key := range []string{"category", "country", "year", "type", "quality", "lang"} {
			if q.Has(key) {
				t.Errorf("empty filter %q must be omitted from the query", key)
			}
		}
		w.Write([]byte(`{"data": {"items": [], "params": {"pagination": {"totalItems": 0, "totalItemsPerPage": 24}}}}`))
	}))
	defer server.Close()

	if _, err := client.FetchFilteredPage(context.Background(), 1, catalog.Filter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDerivedTotalPagesZeroPerPage(t *testing.T) {
	p := v1Pagination{TotalItems: 100, TotalItemsPerPage: 0}
	if got := p.totalPages(); got != 0 {
		t.Fatalf("expected 0 when totalItemsPerPage is 0, got %d", got)
	}
	p = v1Pagination{TotalItems: 48, TotalItemsPerPage: 24}
	if got := p.totalPages(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	p = v1Pagination{TotalItems: 49, TotalItemsPerPage: 24}
	if got := p.totalPages(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestFetchSearchPageKeyword(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/tim-kiem" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("keyword") != "mắt biếc" {
			t.Errorf("expected keyword, got %q", r.URL.Query().Get("keyword"))
		}
		w.Write([]byte(`{"data": {"items": [{"slug": "mat-biec"}], "params": {"pagination": {"totalItems": 1, "totalItemsPerPage": 24}}}}`))
	}))
	defer server.Close()

	page, err := client.FetchSearchPage(context.Background(), "mắt biếc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "mat-biec" {
		t.Fatalf("search items decoded wrong: %+v", page.Items)
	}
}

func TestFetchNon2xxIsFailure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := client.FetchLatestPage(context.Background(), 1); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestFetchMalformedBodyIsFailure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	if _, err := client.FetchLatestPage(context.Background(), 1); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestFetchDetail(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/phim/nu-hoang-nuoc-mat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"movie": {
				"name": "Nữ Hoàng Nước Mắt", "slug": "nu-hoang-nuoc-mat",
				"content": "desc", "year": 2024, "status": "completed",
				"chieu_rap": true, "type": "series",
				"actor": ["Kim Ji Won", "Kim Soo Hyun"],
				"category": [{"name": "Tình Cảm", "slug": "tinh-cam"}]
			},
			"episodes": [
				{"server_name": "Server 1", "server_data": [
					{"name": "1", "link_embed": "https://e/1", "link_m3u8": "https://m/1"},
					{"name": "2", "link_embed": "https://e/2", "link_m3u8": "https://m/2"}
				]}
			]
		}`))
	}))
	defer server.Close()

	detail, err := client.FetchDetail(context.Background(), "nu-hoang-nuoc-mat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Movie.Name != "Nữ Hoàng Nước Mắt" || !detail.Movie.TheatricalRelease {
		t.Errorf("movie decoded wrong: %+v", detail.Movie)
	}
	if len(detail.Movie.Actor) != 2 {
		t.Errorf("expected 2 actors, got %v", detail.Movie.Actor)
	}
	if len(detail.Episodes) != 1 || len(detail.Episodes[0].Episodes) != 2 {
		t.Fatalf("episodes decoded wrong: %+v", detail.Episodes)
	}
	if detail.Episodes[0].Episodes[1].LinkM3U8 != "https://m/2" {
		t.Errorf("episode link decoded wrong: %+v", detail.Episodes[0].Episodes[1])
	}
}

func TestFetchDetailNotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := client.FetchDetail(context.Background(), "khong-ton-tai")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchCategories(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/the-loai" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"name": "Hành Động", "slug": "hanh-dong"}, {"name": "Kinh Dị", "slug": "kinh-di"}]`))
	}))
	defer server.Close()

	tags, err := client.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[1].Slug != "kinh-di" {
		t.Fatalf("categories decoded wrong: %+v", tags)
	}
}
