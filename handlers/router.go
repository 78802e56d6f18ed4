package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Flicks/config"
	"Flicks/shared/middleware"
)

func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.Handler())

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static/", fs))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(cfg.RateLimit, cfg.RateLimitWindow))

		r.Get("/", h.Homepage)
		r.Get("/movie/{movieID}", h.MovieDetails)
		r.Get("/search", h.Search)
		r.Get("/today", h.Today)
		r.Get("/favorites", h.Favorites)
		r.Post("/favorites/add", h.AddFavorite)
	})

	return r
}
