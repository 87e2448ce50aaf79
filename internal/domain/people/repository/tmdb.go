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

	"github.com/minhtran/phimhub/internal/domain/people"
)

// TMDBClient talks to the person-metadata API. Every call carries the api
// key and the configured language.
type TMDBClient struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	httpc        *http.Client
}

func NewTMDBClient(baseURL, imageBaseURL, apiKey, language string, timeout time.Duration) *TMDBClient {
	return &TMDBClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		apiKey:       apiKey,
		language:     language,
		httpc:        &http.Client{Timeout: timeout},
	}
}

func (c *TMDBClient) getJSON(ctx context.Context, endpoint string, query url.Values, v interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("tmdb returned status %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding tmdb response: %w", err)
	}
	return nil
}

// SearchPerson returns the ranked hits for a free-text name query, in
// upstream order.
func (c *TMDBClient) SearchPerson(ctx context.Context, query string) ([]people.PersonSummary, error) {
	var payload struct {
		Results []people.PersonSummary `json:"results"`
	}
	if err := c.getJSON(ctx, "search/person", url.Values{"query": {query}}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// GetPerson fetches the full person record by id.
func (c *TMDBClient) GetPerson(ctx context.Context, id int64) (*people.PersonDetail, error) {
	var detail people.PersonDetail
	if err := c.getJSON(ctx, "person/"+strconv.FormatInt(id, 10), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetCombinedCredits fetches the person's combined movie and series
// filmography.
func (c *TMDBClient) GetCombinedCredits(ctx context.Context, id int64) ([]people.Credit, error) {
	var payload struct {
		Cast []people.Credit `json:"cast"`
	}
	if err := c.getJSON(ctx, "person/"+strconv.FormatInt(id, 10)+"/combined_credits", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Cast, nil
}

// ImageURL prefixes a profile path with the configured image host. Empty
// paths stay empty.
func (c *TMDBClient) ImageURL(profilePath string) string {
	if profilePath == "" {
		return ""
	}
	return c.imageBaseURL + profilePath
}
