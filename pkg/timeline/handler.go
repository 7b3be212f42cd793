package timeline

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/unify-apps/calendar-timeline/internal/rest"
	"github.com/unify-apps/calendar-timeline/internal/utils"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID     string         `json:"id,omitempty"`
	Title  string         `json:"title,omitempty"`
	Color  string         `json:"color,omitempty"`
	Start  string         `json:"start,omitempty"`
	End    string         `json:"end,omitempty"`
	AllDay bool           `json:"allDay,omitempty"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// LayoutConfigDTO carries per-request layout overrides. Fields are
// pointers so an explicit zero still overrides a nonzero configured
// default.
type LayoutConfigDTO struct {
	ScreenWidth          *float64 `json:"screenWidth,omitempty"`
	DayStart             *float64 `json:"dayStart,omitempty"`
	HourBlockHeight      *float64 `json:"hourBlockHeight,omitempty"`
	OverlapEventsSpacing *float64 `json:"overlapEventsSpacing,omitempty"`
	RightEdgeSpacing     *float64 `json:"rightEdgeSpacing,omitempty"`
}

type PackedEventDTO struct {
	EventDTO
	SegmentDate    string    `json:"segmentDate"`
	IsEventSegment bool      `json:"isEventSegment,omitempty"`
	DayType        DayType   `json:"dayType,omitempty"`
	OriginalEvent  *EventDTO `json:"originalEvent,omitempty"`
	Top            float64   `json:"top"`
	Height         float64   `json:"height"`
	Left           float64   `json:"left"`
	Width          float64   `json:"width"`
	ZIndex         int       `json:"zIndex"`
}

type Handler struct {
	service  Service
	clock    utils.Clock
	defaults PackOptions
}

func NewHandler(service Service, clock utils.Clock, defaults PackOptions) *Handler {
	return &Handler{service, clock, defaults}
}

// LayoutDay packs the events of a single date. The date defaults to today
// when omitted.
func (h *Handler) LayoutDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request struct {
		Date   string          `json:"date"`
		Events []EventDTO      `json:"events"`
		Config LayoutConfigDTO `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}

	if request.Date == "" {
		request.Date = DateOf(h.clock.Now())
	}
	if _, err := time.Parse(DateLayout, request.Date); err != nil {
		writeBadRequest(w, "Invalid date format", "'date' must be formatted as 2006-01-02")
		return
	}

	events, err := eventsFromDTOs(request.Events)
	if err != nil {
		writeBadRequest(w, "Invalid event timestamp", err.Error())
		return
	}

	packed := h.service.LayoutDay(request.Date, events, h.packOptions(request.Config))
	log.Debugf("packed %d events for %s", len(packed), request.Date)

	response := struct {
		Date   string           `json:"date"`
		Events []PackedEventDTO `json:"events"`
	}{request.Date, packedToDTOs(packed)}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// LayoutRange packs events for every date of a visible page.
func (h *Handler) LayoutRange(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request struct {
		PageDates []string        `json:"pageDates"`
		Events    []EventDTO      `json:"events"`
		Config    LayoutConfigDTO `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}
	if len(request.PageDates) == 0 {
		writeBadRequest(w, "Missing page dates", "'pageDates' must contain at least one date")
		return
	}
	for _, date := range request.PageDates {
		if _, err := time.Parse(DateLayout, date); err != nil {
			writeBadRequest(w, "Invalid date format", fmt.Sprintf("page date %q must be formatted as 2006-01-02", date))
			return
		}
	}

	events, err := eventsFromDTOs(request.Events)
	if err != nil {
		writeBadRequest(w, "Invalid event timestamp", err.Error())
		return
	}

	layout := h.service.LayoutRange(events, request.PageDates, h.packOptions(request.Config))

	response := make(map[string][]PackedEventDTO, len(layout))
	for date, packed := range layout {
		response[date] = packedToDTOs(packed)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// packOptions overlays request config on top of the configured defaults.
func (h *Handler) packOptions(cfg LayoutConfigDTO) PackOptions {
	opts := h.defaults
	if cfg.ScreenWidth != nil {
		opts.ScreenWidth = *cfg.ScreenWidth
	}
	if cfg.DayStart != nil {
		opts.DayStart = *cfg.DayStart
	}
	if cfg.HourBlockHeight != nil {
		opts.HourBlockHeight = *cfg.HourBlockHeight
	}
	if cfg.OverlapEventsSpacing != nil {
		opts.OverlapEventsSpacing = *cfg.OverlapEventsSpacing
	}
	if cfg.RightEdgeSpacing != nil {
		opts.RightEdgeSpacing = *cfg.RightEdgeSpacing
	}
	return opts
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func eventsFromDTOs(dtos []EventDTO) ([]Event, error) {
	events := make([]Event, 0, len(dtos))
	for _, dto := range dtos {
		ev, err := dtoToEvent(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func dtoToEvent(dto EventDTO) (Event, error) {
	ev := Event{
		ID:     dto.ID,
		Title:  dto.Title,
		Color:  dto.Color,
		AllDay: dto.AllDay,
		Extra:  dto.Extra,
	}
	if dto.Start != "" {
		start, err := time.Parse(time.RFC3339, dto.Start)
		if err != nil {
			return Event{}, fmt.Errorf("event %q start must be in RFC3339 format", dto.ID)
		}
		ev.Start = start
	}
	if dto.End != "" {
		end, err := time.Parse(time.RFC3339, dto.End)
		if err != nil {
			return Event{}, fmt.Errorf("event %q end must be in RFC3339 format", dto.ID)
		}
		ev.End = end
	}
	return ev, nil
}

func eventToDTO(ev Event) EventDTO {
	dto := EventDTO{
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
	return dto
}

func packedToDTOs(packed []PackedEvent) []PackedEventDTO {
	dtos := make([]PackedEventDTO, 0, len(packed))
	for _, p := range packed {
		dto := PackedEventDTO{
			EventDTO:       eventToDTO(p.Event),
			SegmentDate:    p.SegmentDate,
			IsEventSegment: p.IsEventSegment,
			DayType:        p.DayType,
			Top:            p.Top,
			Height:         p.Height,
			Left:           p.Left,
			Width:          p.Width,
			ZIndex:         p.ZIndex,
		}
		if p.Original != nil {
			original := eventToDTO(*p.Original)
			dto.OriginalEvent = &original
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
