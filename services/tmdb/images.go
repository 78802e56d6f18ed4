package tmdb

import "strings"

// Poster sizes served by the TMDB image CDN. Sizes are passed through to the
// CDN unchecked; these constants only name the common ones.
const (
	PosterW92      = "w92"
	PosterW154     = "w154"
	PosterW185     = "w185"
	PosterW342     = "w342"
	PosterW500     = "w500"
	PosterW780     = "w780"
	PosterOriginal = "original"

	DefaultPosterSize = PosterW342
)

// PosterURL joins the image base URL, a size segment and a TMDB file path.
// An empty size means DefaultPosterSize.
func PosterURL(imageBaseURL, path, size string) string {
	if size == "" {
		size = DefaultPosterSize
	}
	return withTrailingSlash(imageBaseURL) + size + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) PosterURL(path, size string) string {
	return PosterURL(c.imageBaseURL, path, size)
}
