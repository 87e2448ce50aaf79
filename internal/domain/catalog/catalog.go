package catalog

import "errors"

var (
	// ErrAllFetchesFailed means every upstream fetch in a fan-out batch
	// failed. Distinct from a legitimately empty result set.
	ErrAllFetchesFailed = errors.New("all upstream fetches failed")

	// ErrNotFound means the requested entity does not exist upstream.
	ErrNotFound = errors.New("not found")
)

// Tag is a name+slug pair used for both categories and countries.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// MovieSummary is one item of a listing as returned by the upstream catalog.
// Field tags mirror the upstream JSON; values are never mutated locally.
type MovieSummary struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ThumbURL  string `json:"thumb_url"`
	PosterURL string `json:"poster_url"`
	Year      int    `json:"year"`
	Category  []Tag  `json:"category"`
	Country   []Tag  `json:"country"`
}

// Pagination is expressed in logical UI page numbering, never in the
// upstream's own numbering space.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// PageResult is the unit returned by every catalog listing query.
type PageResult struct {
	Items      []MovieSummary `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// UpstreamPage is the normalized result of a single upstream page fetch.
// CurrentPage and TotalPages are upstream-native numbers.
type UpstreamPage struct {
	Items       []MovieSummary
	CurrentPage int
	TotalPages  int
}

// Filter holds the independent optional equality filters accepted by the
// v1 listing endpoint. The zero value means "unfiltered".
type Filter struct {
	Category string
	Country  string
	Year     string
	Type     string
	Quality  string
	Lang     string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// MovieDetail is the full record for a single movie.
type MovieDetail struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	OriginName        string   `json:"origin_name"`
	Content           string   `json:"content"`
	ThumbURL          string   `json:"thumb_url"`
	PosterURL         string   `json:"poster_url"`
	TrailerURL        string   `json:"trailer_url"`
	Year              int      `json:"year"`
	Status            string   `json:"status"`
	Category          []Tag    `json:"category"`
	Country           []Tag    `json:"country"`
	Actor             []string `json:"actor"`
	Director          []string `json:"director"`
	TheatricalRelease bool     `json:"chieu_rap"`
	Type              string   `json:"type"`
}

// EpisodeGroup is one upstream server with its ordered episode list.
type EpisodeGroup struct {
	ServerName string    `json:"server_name"`
	Episodes   []Episode `json:"server_data"`
}

type Episode struct {
	Name      string `json:"name"`
	LinkEmbed string `json:"link_embed"`
	LinkM3U8  string `json:"link_m3u8"`
}

// DetailResult is a movie detail together with its related-movies list.
type DetailResult struct {
	Movie    MovieDetail    `json:"movie"`
	Episodes []EpisodeGroup `json:"episodes"`
	Related  []MovieSummary `json:"related"`
}

// HomeRows are the curated single-page listings shown on the landing page.
type HomeRows struct {
	Latest    []MovieSummary `json:"latest"`
	Action    []MovieSummary `json:"action"`
	Horror    []MovieSummary `json:"horror"`
	Animation []MovieSummary `json:"animation"`
}
