package unavailable

import (
	"encoding/json"
	"net/http"

	"github.com/unify-apps/calendar-timeline/internal/rest"
)

type HourRangeDTO struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type BlockDTO struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

type Handler struct {
	builder  *Builder
	defaults Options
}

func NewHandler(builder *Builder, defaults Options) *Handler {
	return &Handler{builder, defaults}
}

// BuildBlocks converts unavailable-hours ranges into pixel blocks.
func (h *Handler) BuildBlocks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Config fields are pointers so an explicit zero still overrides a
	// nonzero configured default.
	var request struct {
		Ranges []HourRangeDTO `json:"ranges"`
		Config struct {
			DayStart        *float64 `json:"dayStart,omitempty"`
			DayEnd          *float64 `json:"dayEnd,omitempty"`
			HourBlockHeight *float64 `json:"hourBlockHeight,omitempty"`
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

	opts := h.defaults
	if request.Config.DayStart != nil {
		opts.DayStart = *request.Config.DayStart
	}
	if request.Config.DayEnd != nil {
		opts.DayEnd = *request.Config.DayEnd
	}
	if request.Config.HourBlockHeight != nil {
		opts.HourBlockHeight = *request.Config.HourBlockHeight
	}

	ranges := make([]HourRange, 0, len(request.Ranges))
	for _, dto := range request.Ranges {
		ranges = append(ranges, HourRange{Start: dto.Start, End: dto.End})
	}

	blocks := h.builder.Build(ranges, opts)
	dtos := make([]BlockDTO, 0, len(blocks))
	for _, block := range blocks {
		dtos = append(dtos, BlockDTO{Top: block.Top, Height: block.Height})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
