package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"Flicks/services/tmdb"
	"Flicks/shared/format"
)

// Page carries the fields every layout needs.
type Page struct {
	CurrentPage string
	SearchQuery string
	Flashes     []string
}

func GetFuncMap(movies MovieSource) template.FuncMap {
	return template.FuncMap{
		"tmdb_image_url": func(path any, size string) string {
			p := derefString(path)
			if p == "" {
				return ""
			}
			return movies.PosterURL(p, size)
		},
		"list_label": listLabel,
		"preview":    format.Preview,
		"title":      title,
	}
}

func title(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// listLabel turns "top_rated" into "Top rated".
func listLabel(c tmdb.Category) string {
	return title(strings.ReplaceAll(c.String(), "_", " "))
}

func derefString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, current string) Page {
	return Page{
		CurrentPage: current,
		Flashes:     h.sessions.Flashes(w, r),
	}
}

func render(w http.ResponseWriter, tmpl *template.Template, data any) {
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "template", tmpl.Name(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// upstreamFailure maps a MovieSource error to a response: a TMDB 404 is a
// 404, any other TMDB failure is a 502.
func upstreamFailure(w http.ResponseWriter, r *http.Request, err error) {
	var ue *tmdb.UpstreamError
	switch {
	case errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound:
		slog.Warn("Movie not found upstream", "path", r.URL.Path, "error", err)
		http.Error(w, "Movie not found", http.StatusNotFound)
	case errors.Is(err, tmdb.ErrUpstream):
		slog.Error("TMDB request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "The movie database is unavailable, try again later", http.StatusBadGateway)
	default:
		slog.Error("Request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
