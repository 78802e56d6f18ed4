package tmdb

import (
	"context"
	"fmt"
	"strings"

	"Flicks/models"
)

func (c *Client) GetMoviesList(ctx context.Context, category Category) (*models.MovieList, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown movie list category %q", category)
	}

	var list models.MovieList
	if err := c.Call(ctx, ListMovies{Category: category}, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch %s movies: %w", category, err)
	}
	return &list, nil
}

func (c *Client) GetSingleMovie(ctx context.Context, movieID string) (*models.MovieDetail, error) {
	var movie models.MovieDetail
	if err := c.Call(ctx, GetMovie{ID: movieID}, &movie); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %s: %w", movieID, err)
	}
	return &movie, nil
}

func (c *Client) GetMovieImages(ctx context.Context, movieID string) (*models.MovieImages, error) {
	var images models.MovieImages
	if err := c.Call(ctx, GetImages{ID: movieID}, &images); err != nil {
		return nil, fmt.Errorf("failed to fetch images for movie %s: %w", movieID, err)
	}
	return &images, nil
}

// GetMovieCast returns the cast section of the movie credits, untruncated.
func (c *Client) GetMovieCast(ctx context.Context, movieID string) ([]models.CastMember, error) {
	var credits models.Credits
	if err := c.Call(ctx, GetCredits{ID: movieID}, &credits); err != nil {
		return nil, fmt.Errorf("failed to fetch cast for movie %s: %w", movieID, err)
	}
	return credits.Cast, nil
}

// Search runs a free-text movie search. A blank query yields an empty list
// without contacting TMDB.
func (c *Client) Search(ctx context.Context, query string) (*models.MovieList, error) {
	if strings.TrimSpace(query) == "" {
		return &models.MovieList{Results: []models.MovieSummary{}}, nil
	}

	var list models.MovieList
	if err := c.Call(ctx, Search{Text: query}, &list); err != nil {
		return nil, fmt.Errorf("failed to search movies for %q: %w", query, err)
	}
	return &list, nil
}

// GetAiringToday lists the movies currently in theatres.
func (c *Client) GetAiringToday(ctx context.Context) (*models.MovieList, error) {
	return c.GetMoviesList(ctx, NowPlaying)
}
