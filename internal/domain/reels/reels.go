package reels

// ClipInfo is the injected per-file metadata for a bonus clip. The table is
// configuration data, not business logic.
type ClipInfo struct {
	ActorName string
	MovieName string
	MovieSlug string
}

// Reel is one playable bonus clip with whatever metadata could be resolved.
// Missing metadata leaves fields empty, it never fails the listing.
type Reel struct {
	VideoURL   string `json:"video_url"`
	ActorName  string `json:"actor_name,omitempty"`
	ActorImage string `json:"actor_image,omitempty"`
	MovieName  string `json:"movie_name,omitempty"`
	MovieSlug  string `json:"movie_slug,omitempty"`
	PosterURL  string `json:"poster_url,omitempty"`
}
