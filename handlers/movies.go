package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Flicks/models"
	"Flicks/services/tmdb"
)

type HomepageData struct {
	Page
	Heading     string
	Movies      []MovieCard
	CurrentList tmdb.Category
	ListTypes   []tmdb.Category
}

// Homepage lists one TMDB category. Unknown or missing list_type values fall
// back to popular.
func (h *Handler) Homepage(w http.ResponseWriter, r *http.Request) {
	selected := tmdb.ParseCategory(r.URL.Query().Get("list_type"))

	list, err := h.movies.GetMoviesList(r.Context(), selected)
	if err != nil {
		upstreamFailure(w, r, err)
		return
	}

	data := HomepageData{
		Page:        h.page(w, r, "/"),
		Heading:     listLabel(selected) + " movies",
		Movies:      cardsFromSummaries(firstN(list.Results, homepageLimit)),
		CurrentList: selected,
		ListTypes:   tmdb.Categories(),
	}

	render(w, h.homepageTmpl, data)
}

type MovieDetailsData struct {
	Page
	Movie      *models.MovieDetail
	Cast       []models.CastMember
	IsFavorite bool
}

func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	movie, err := h.movies.GetSingleMovie(r.Context(), movieID)
	if err != nil {
		upstreamFailure(w, r, err)
		return
	}

	cast, err := h.movies.GetMovieCast(r.Context(), movieID)
	if err != nil {
		upstreamFailure(w, r, err)
		return
	}

	data := MovieDetailsData{
		Page:       h.page(w, r, "/movie"),
		Movie:      movie,
		Cast:       firstN(cast, castLimit),
		IsFavorite: h.favorites.Contains(movieID),
	}

	render(w, h.movieDetailsTmpl, data)
}
