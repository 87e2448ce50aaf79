package people

import "errors"

// ErrPersonNotFound covers every failure mode of an actor lookup: no search
// hits, upstream errors and decode failures alike. No partial results.
var ErrPersonNotFound = errors.New("person not found")

// PersonSummary is one person-search hit. Popularity is only used to rank
// same-named hits, it is never displayed.
type PersonSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ProfilePath string  `json:"profile_path"`
	Popularity  float64 `json:"popularity"`
}

// PersonDetail is the full person record including alternate names.
type PersonDetail struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	AlsoKnownAs  []string `json:"also_known_as"`
	Biography    string   `json:"biography"`
	Birthday     string   `json:"birthday"`
	PlaceOfBirth string   `json:"place_of_birth"`
	ProfilePath  string   `json:"profile_path"`
	Popularity   float64  `json:"popularity"`
}

// Credit is one filmography entry. MediaType discriminates movies from
// series; Title is set for movies and Name for series.
type Credit struct {
	ID         int64   `json:"id"`
	MediaType  string  `json:"media_type"`
	Title      string  `json:"title"`
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	PosterPath string  `json:"poster_path"`
	Popularity float64 `json:"popularity"`
}

// ActorProfile is the resolved actor page payload. DisplayName applies the
// Latin-script preference rule; the underlying record stays untouched.
type ActorProfile struct {
	Person       PersonDetail `json:"person"`
	DisplayName  string       `json:"display_name"`
	ProfileImage string       `json:"profile_image"`
	Works        []Credit     `json:"works"`
}

// ActorImage is the small payload served to the image lookup endpoint.
type ActorImage struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
