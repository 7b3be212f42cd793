package allday

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/unify-apps/calendar-timeline/internal/rest"
	"github.com/unify-apps/calendar-timeline/pkg/timeline"
)

type ChipDTO struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Color       string         `json:"color,omitempty"`
	Start       string         `json:"start,omitempty"`
	End         string         `json:"end,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
	Row         int            `json:"row"`
	StartColumn int            `json:"startColumn"`
	ColumnSpan  int            `json:"columnSpan"`
	Visible     bool           `json:"visible"`
	Left        float64        `json:"left"`
	Width       float64        `json:"width"`
	Top         float64        `json:"top"`
}

type LaneDTO struct {
	Chips    []ChipDTO      `json:"chips"`
	Overflow map[string]int `json:"overflow"`
}

type Handler struct {
	defaults Options
}

func NewHandler(defaults Options) *Handler {
	return &Handler{defaults}
}

// LayoutLane arranges all-day events across the page's day columns.
func (h *Handler) LayoutLane(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Config fields are pointers so an explicit zero still overrides a
	// nonzero configured default.
	var request struct {
		PageDates []string            `json:"pageDates"`
		Events    []timeline.EventDTO `json:"events"`
		Config    struct {
			MaxVisibleRows *int     `json:"maxVisibleRows,omitempty"`
			ColumnWidth    *float64 `json:"columnWidth,omitempty"`
			RowHeight      *float64 `json:"rowHeight,omitempty"`
		} `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if len(request.PageDates) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing page dates",
			Details: "'pageDates' must contain at least one date",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	events := make([]timeline.Event, 0, len(request.Events))
	for _, dto := range request.Events {
		ev, err := eventFromDTO(dto)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid event timestamp",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		events = append(events, ev)
	}

	opts := h.defaults
	if request.Config.MaxVisibleRows != nil {
		opts.MaxVisibleRows = *request.Config.MaxVisibleRows
	}
	if request.Config.ColumnWidth != nil {
		opts.ColumnWidth = *request.Config.ColumnWidth
	}
	if request.Config.RowHeight != nil {
		opts.RowHeight = *request.Config.RowHeight
	}

	lane := Layout(events, request.PageDates, opts)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(laneToDTO(lane)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func eventFromDTO(dto timeline.EventDTO) (timeline.Event, error) {
	ev := timeline.Event{
		ID:     dto.ID,
		Title:  dto.Title,
		Color:  dto.Color,
		AllDay: dto.AllDay,
		Extra:  dto.Extra,
	}
	if dto.Start != "" {
		start, err := time.Parse(time.RFC3339, dto.Start)
		if err != nil {
			return timeline.Event{}, fmt.Errorf("event %q start must be in RFC3339 format", dto.ID)
		}
		ev.Start = start
	}
	if dto.End != "" {
		end, err := time.Parse(time.RFC3339, dto.End)
		if err != nil {
			return timeline.Event{}, fmt.Errorf("event %q end must be in RFC3339 format", dto.ID)
		}
		ev.End = end
	}
	return ev, nil
}

func laneToDTO(lane Lane) LaneDTO {
	dto := LaneDTO{
		Chips:    make([]ChipDTO, 0, len(lane.Chips)),
		Overflow: lane.Overflow,
	}
	for _, chip := range lane.Chips {
		chipDTO := ChipDTO{
			ID:          chip.ID,
			Title:       chip.Title,
			Color:       chip.Color,
			Extra:       chip.Extra,
			Row:         chip.Row,
			StartColumn: chip.StartColumn,
			ColumnSpan:  chip.ColumnSpan,
			Visible:     chip.Visible,
			Left:        chip.Left,
			Width:       chip.Width,
			Top:         chip.Top,
		}
		if !chip.Start.IsZero() {
			chipDTO.Start = chip.Start.Format(time.RFC3339Nano)
		}
		if !chip.End.IsZero() {
			chipDTO.End = chip.End.Format(time.RFC3339Nano)
		}
		dto.Chips = append(dto.Chips, chipDTO)
	}
	return dto
}
