package handlers

import (
	"net/http"
	"time"
)

type TodayData struct {
	Page
	Movies []MovieCard
	Today  time.Time
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	list, err := h.movies.GetAiringToday(r.Context())
	if err != nil {
		upstreamFailure(w, r, err)
		return
	}

	data := TodayData{
		Page:   h.page(w, r, "/today"),
		Movies: cardsFromSummaries(list.Results),
		Today:  h.now(),
	}

	render(w, h.todayTmpl, data)
}
