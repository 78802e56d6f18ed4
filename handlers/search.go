package handlers

import (
	"net/http"
	"strings"
)

type SearchPageData struct {
	Page
	Movies []MovieCard
}

// Search renders TMDB search results. An empty query renders an empty page
// without calling TMDB.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	movies := []MovieCard{}
	if query != "" {
		list, err := h.movies.Search(r.Context(), query)
		if err != nil {
			upstreamFailure(w, r, err)
			return
		}
		movies = cardsFromSummaries(list.Results)
	}

	data := SearchPageData{
		Page:   h.page(w, r, "/search"),
		Movies: movies,
	}
	data.SearchQuery = query

	render(w, h.searchTmpl, data)
}
