package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/minhtran/phimhub/internal/domain/catalog"
)

// OphimClient issues HTTP GETs against the Ophim catalog API and decodes the
// two envelope shapes it serves. It never retries; a non-2xx status, a
// transport error or a malformed body all surface as a single error and the
// caller decides what to do with it.
type OphimClient struct {
	baseURL string
	httpc   *http.Client
}

func NewOphimClient(baseURL string, timeout time.Duration) *OphimClient {
	return &OphimClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// flatEnvelope is the shape of the plain listing endpoint. Status is a bool
// on some deployments and a string on others, so it stays raw.
type flatEnvelope struct {
	Status     json.RawMessage        `json:"status"`
	Msg        string                 `json:"msg"`
	Items      []catalog.MovieSummary `json:"items"`
	Pagination flatPagination         `json:"pagination"`
}

type flatPagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// v1Envelope is the nested shape served by every v1/api endpoint.
type v1Envelope struct {
	Status json.RawMessage `json:"status"`
	Msg    string          `json:"msg"`
	Data   v1Data          `json:"data"`
}

type v1Data struct {
	Items  []catalog.MovieSummary `json:"items"`
	Params v1Params               `json:"params"`
}

type v1Params struct {
	Pagination v1Pagination `json:"pagination"`
}

type v1Pagination struct {
	TotalItems        int `json:"totalItems"`
	TotalItemsPerPage int `json:"totalItemsPerPage"`
	CurrentPage       int `json:"currentPage"`
	PageRanges        int `json:"pageRanges"`
}

// totalPages is derived at read time. The v1 envelope carries no literal
// total-page field worth trusting.
func (p v1Pagination) totalPages() int {
	if p.TotalItemsPerPage <= 0 {
		return 0
	}
	return (p.TotalItems + p.TotalItemsPerPage - 1) / p.TotalItemsPerPage
}

func (c *OphimClient) getJSON(ctx context.Context, endpoint string, query url.Values, v interface{}) error {
	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding upstream response: %w", err)
	}
	return nil
}

// FetchLatestPage fetches one page of the unfiltered latest-movies listing
// (flat envelope).
func (c *OphimClient) FetchLatestPage(ctx context.Context, page int) (*catalog.UpstreamPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}

	var env flatEnvelope
	if err := c.getJSON(ctx, "danh-sach/phim-moi-cap-nhat", query, &env); err != nil {
		return nil, err
	}

	return &catalog.UpstreamPage{
		Items:       env.Items,
		CurrentPage: env.Pagination.CurrentPage,
		TotalPages:  env.Pagination.TotalPages,
	}, nil
}

// FetchFilteredPage fetches one page of the v1 listing with the given
// equality filters. Empty filter fields are omitted from the query.
func (c *OphimClient) FetchFilteredPage(ctx context.Context, page int, f catalog.Filter) (*catalog.UpstreamPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	setIfPresent(query, "category", f.Category)
	setIfPresent(query, "country", f.Country)
	setIfPresent(query, "year", f.Year)
	setIfPresent(query, "type", f.Type)
	setIfPresent(query, "quality", f.Quality)
	setIfPresent(query, "lang", f.Lang)

	return c.fetchV1Page(ctx, "v1/api/danh-sach/phim-moi-cap-nhat", query)
}

// FetchSearchPage fetches one page of keyword search results. Search never
// carries the listing filters.
func (c *OphimClient) FetchSearchPage(ctx context.Context, keyword string, page int) (*catalog.UpstreamPage, error) {
	query := url.Values{
		"keyword": {keyword},
		"page":    {strconv.Itoa(page)},
	}
	return c.fetchV1Page(ctx, "v1/api/tim-kiem", query)
}

// FetchGenrePage fetches one page of the fixed genre shortcut listing.
func (c *OphimClient) FetchGenrePage(ctx context.Context, genreSlug string, page int) (*catalog.UpstreamPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	return c.fetchV1Page(ctx, "v1/api/the-loai/"+genreSlug, query)
}

// FetchTypePage fetches one page of a fixed content-type listing, e.g.
// hoat-hinh for animation.
func (c *OphimClient) FetchTypePage(ctx context.Context, typeSlug string, page int) (*catalog.UpstreamPage, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	return c.fetchV1Page(ctx, "v1/api/danh-sach/"+typeSlug, query)
}

func (c *OphimClient) fetchV1Page(ctx context.Context, endpoint string, query url.Values) (*catalog.UpstreamPage, error) {
	var env v1Envelope
	if err := c.getJSON(ctx, endpoint, query, &env); err != nil {
		return nil, err
	}

	return &catalog.UpstreamPage{
		Items:       env.Data.Items,
		CurrentPage: env.Data.Params.Pagination.CurrentPage,
		TotalPages:  env.Data.Params.Pagination.totalPages(),
	}, nil
}

type detailEnvelope struct {
	Movie    catalog.MovieDetail    `json:"movie"`
	Episodes []catalog.EpisodeGroup `json:"episodes"`
}

// FetchDetail fetches the full record for one movie by slug. Any upstream
// failure maps to catalog.ErrNotFound; there is no partial detail.
func (c *OphimClient) FetchDetail(ctx context.Context, slug string) (*catalog.DetailResult, error) {
	var env detailEnvelope
	if err := c.getJSON(ctx, "phim/"+url.PathEscape(slug), nil, &env); err != nil {
		return nil, catalog.ErrNotFound
	}

	return &catalog.DetailResult{
		Movie:    env.Movie,
		Episodes: env.Episodes,
	}, nil
}

// FetchCategories fetches the category lookup table.
func (c *OphimClient) FetchCategories(ctx context.Context) ([]catalog.Tag, error) {
	var tags []catalog.Tag
	if err := c.getJSON(ctx, "the-loai", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// FetchCountries fetches the country lookup table.
func (c *OphimClient) FetchCountries(ctx context.Context) ([]catalog.Tag, error) {
	var tags []catalog.Tag
	if err := c.getJSON(ctx, "quoc-gia", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
