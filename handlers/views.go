package handlers

import "Flicks/models"

// MovieCard is what the movie grid renders; list results and full details
// both reduce to it.
type MovieCard struct {
	ID          int
	Title       string
	Overview    string
	PosterPath  *string
	ReleaseDate *string
}

func cardsFromSummaries(movies []models.MovieSummary) []MovieCard {
	cards := make([]MovieCard, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, MovieCard{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			PosterPath:  m.PosterPath,
			ReleaseDate: m.ReleaseDate,
		})
	}
	return cards
}

func cardFromDetail(m *models.MovieDetail) MovieCard {
	return MovieCard{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
