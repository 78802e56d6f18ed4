package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Favorites resolves every stored id to its TMDB details and renders them
// with the homepage template. Any failed lookup fails the page.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	ids := h.favorites.List()

	movies := make([]MovieCard, 0, len(ids))
	for _, id := range ids {
		movie, err := h.movies.GetSingleMovie(r.Context(), id)
		if err != nil {
			upstreamFailure(w, r, err)
			return
		}
		movies = append(movies, cardFromDetail(movie))
	}

	data := HomepageData{
		Page:    h.page(w, r, "/favorites"),
		Heading: "Favorite movies",
		Movies:  movies,
	}

	render(w, h.homepageTmpl, data)
}

// AddFavorite stores movie_id when both movie_id and movie_title are posted;
// otherwise it does nothing. Either way it redirects to the homepage.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	movieID := r.PostFormValue("movie_id")
	movieTitle := r.PostFormValue("movie_title")

	if movieID != "" && movieTitle != "" {
		h.favorites.Add(movieID)
		slog.Info("Added favorite", "movie_id", movieID, "title", movieTitle)
		if err := h.sessions.AddFlash(w, r, fmt.Sprintf("Added %s to favorites!", movieTitle)); err != nil {
			slog.Warn("Failed to store flash message", "error", err)
		}
	}

	// HTMX requests follow HX-Redirect instead of a 303.
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
