package tmdb

import (
	"fmt"
	"net/url"
)

// Category selects one of the TMDB curated movie lists.
type Category string

const (
	NowPlaying Category = "now_playing"
	Popular    Category = "popular"
	TopRated   Category = "top_rated"
	Upcoming   Category = "upcoming"

	DefaultCategory = Popular
)

var categories = []Category{NowPlaying, Popular, TopRated, Upcoming}

// Categories returns every valid list category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory never fails: absent or unknown values fall back to Popular.
func ParseCategory(s string) Category {
	if c := Category(s); c.Valid() {
		return c
	}
	return DefaultCategory
}

// Query is one request the client knows how to issue. The set of
// implementations is closed; every TMDB path the application touches is
// declared below.
type Query interface {
	// Endpoint is the path relative to the API base URL.
	Endpoint() string
	// Route is the path template, used as a low-cardinality metric label.
	Route() string
	// Params are extra query parameters besides api_key and language.
	Params() url.Values

	query()
}

type ListMovies struct{ Category Category }

type GetMovie struct{ ID string }

type GetImages struct{ ID string }

type GetCredits struct{ ID string }

type Search struct{ Text string }

func (q ListMovies) Endpoint() string { return "movie/" + string(q.Category) }
func (q ListMovies) Route() string {
	if !q.Category.Valid() {
		return "movie/{category}"
	}
	return "movie/" + string(q.Category)
}
func (q ListMovies) Params() url.Values { return nil }
func (ListMovies) query() {}

func (q GetMovie) Endpoint() string { return fmt.Sprintf("movie/%s", url.PathEscape(q.ID)) }
func (q GetMovie) Route() string { return "movie/{id}" }
func (q GetMovie) Params() url.Values { return nil }
func (GetMovie) query() {}

func (q GetImages) Endpoint() string { return fmt.Sprintf("movie/%s/images", url.PathEscape(q.ID)) }
func (q GetImages) Route() string { return "movie/{id}/images" }
func (q GetImages) Params() url.Values { return nil }
func (GetImages) query() {}

func (q GetCredits) Endpoint() string { return fmt.Sprintf("movie/%s/credits", url.PathEscape(q.ID)) }
func (q GetCredits) Route() string { return "movie/{id}/credits" }
func (q GetCredits) Params() url.Values { return nil }
func (GetCredits) query() {}

func (q Search) Endpoint() string { return "search/movie" }
func (q Search) Route() string { return "search/movie" }
func (q Search) Params() url.Values { return url.Values{"query": {q.Text}} }
func (Search) query() {}
