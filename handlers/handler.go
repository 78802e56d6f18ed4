package handlers

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"Flicks/models"
	"Flicks/services"
	"Flicks/services/tmdb"
	"Flicks/templates"
)

const (
	// homepageLimit caps how many movies a list page shows.
	homepageLimit = 8
	// castLimit caps the cast shown on a movie page.
	castLimit = 8
)

// MovieSource is the part of the TMDB client the pages use.
type MovieSource interface {
	GetMoviesList(ctx context.Context, category tmdb.Category) (*models.MovieList, error)
	GetSingleMovie(ctx context.Context, movieID string) (*models.MovieDetail, error)
	GetMovieCast(ctx context.Context, movieID string) ([]models.CastMember, error)
	Search(ctx context.Context, query string) (*models.MovieList, error)
	GetAiringToday(ctx context.Context) (*models.MovieList, error)
	PosterURL(path, size string) string
}

type Handler struct {
	movies    MovieSource
	favorites *services.FavoritesStore
	sessions  *services.SessionStore
	now       func() time.Time

	homepageTmpl     *template.Template
	movieDetailsTmpl *template.Template
	searchTmpl       *template.Template
	todayTmpl        *template.Template
}

func New(movies MovieSource, favorites *services.FavoritesStore, sessions *services.SessionStore) (*Handler, error) {
	h := &Handler{
		movies:    movies,
		favorites: favorites,
		sessions:  sessions,
		now:       time.Now,
	}

	funcMap := GetFuncMap(movies)
	for page, dst := range map[string]**template.Template{
		"homepage.html":      &h.homepageTmpl,
		"movie_details.html": &h.movieDetailsTmpl,
		"search.html":        &h.searchTmpl,
		"today.html":         &h.todayTmpl,
	} {
		tmpl, err := templates.Parse(page, funcMap)
		if err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
		*dst = tmpl
	}

	return h, nil
}
