package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"now_playing", NowPlaying},
		{"popular", Popular},
		{"top_rated", TopRated},
		{"upcoming", Upcoming},
		{"", Popular},
		{"latest", Popular},
		{"POPULAR", Popular},
		{"../popular", Popular},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.in), "input %q", tt.in)
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []Category{NowPlaying, Popular, TopRated, Upcoming}, cats)

	cats[0] = "mutated"
	assert.Equal(t, NowPlaying, Categories()[0])
}

func TestQueryEndpoints(t *testing.T) {
	tests := []struct {
		q        Query
		endpoint string
		route    string
	}{
		{ListMovies{Category: TopRated}, "movie/top_rated", "movie/top_rated"},
		{ListMovies{Category: "bogus"}, "movie/bogus", "movie/{category}"},
		{GetMovie{ID: "42"}, "movie/42", "movie/{id}"},
		{GetMovie{ID: "4 2/x"}, "movie/4%202%2Fx", "movie/{id}"},
		{GetImages{ID: "42"}, "movie/42/images", "movie/{id}/images"},
		{GetCredits{ID: "42"}, "movie/42/credits", "movie/{id}/credits"},
		{Search{Text: "alien"}, "search/movie", "search/movie"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.endpoint, tt.q.Endpoint())
		assert.Equal(t, tt.route, tt.q.Route())
	}

	assert.Equal(t, "alien", Search{Text: "alien"}.Params().Get("query"))
	assert.Nil(t, GetMovie{ID: "1"}.Params())
}

func TestPosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p/"

	t.Run("default size", func(t *testing.T) {
		got := PosterURL(base, "some-poster-path", "")
		assert.Contains(t, got, "w342")
		assert.Equal(t, "https://image.tmdb.org/t/p/w342/some-poster-path", got)
	})

	t.Run("explicit size", func(t *testing.T) {
		got := PosterURL(base, "/abc.jpg", PosterW780)
		assert.Equal(t, "https://image.tmdb.org/t/p/w780/abc.jpg", got)
		assert.NotContains(t, got, "w342")
	})

	t.Run("unknown size passes through", func(t *testing.T) {
		assert.Equal(t, "https://image.tmdb.org/t/p/w1/abc.jpg", PosterURL(base, "/abc.jpg", "w1"))
	})

	t.Run("base without trailing slash", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example/p/original/abc.jpg", PosterURL("https://cdn.example/p", "abc.jpg", PosterOriginal))
	})
}
