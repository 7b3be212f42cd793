package ics

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/unify-apps/calendar-timeline/internal/rest"
	"github.com/unify-apps/calendar-timeline/pkg/timeline"
	log "github.com/sirupsen/logrus"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ImportEvents converts an ICS payload in the request body into
// layout-ready event records.
func (h *Handler) ImportEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Importing events from ICS payload")

	events, err := Parse(r.Body)
	if err != nil {
		if errors.Is(err, ErrEmptyCalendar) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "ICS payload contains no events",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid ICS payload",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	dtos := make([]timeline.EventDTO, 0, len(events))
	for _, ev := range events {
		dto := timeline.EventDTO{
			ID:     ev.ID,
			Title:  ev.Title,
			Color:  ev.Color,
			AllDay: ev.AllDay,
			Extra:  ev.Extra,
		}
		if !ev.Start.IsZero() {
			dto.Start = ev.Start.Format(time.RFC3339Nano)
		}
		if !ev.End.IsZero() {
			dto.End = ev.End.Format(time.RFC3339Nano)
		}
		dtos = append(dtos, dto)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
