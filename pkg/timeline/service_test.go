package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayoutRange(t *testing.T) {
	location, _ := time.LoadLocation("Europe/Warsaw")
	service := NewService()
	opts := PackOptions{ScreenWidth: 400}

	t.Run("packs each page date separately", func(t *testing.T) {
		events := []Event{
			{
				ID:    "mon",
				Start: time.Date(2025, time.January, 6, 9, 0, 0, 0, location),
				End:   time.Date(2025, time.January, 6, 10, 0, 0, 0, location),
			},
			{
				ID:    "tue",
				Start: time.Date(2025, time.January, 7, 9, 0, 0, 0, location),
				End:   time.Date(2025, time.January, 7, 10, 0, 0, 0, location),
			},
		}
		pageDates := []string{"2025-01-06", "2025-01-07", "2025-01-08"}

		layout := service.LayoutRange(events, pageDates, opts)

		assert.Len(t, layout, 3)
		assert.Len(t, layout["2025-01-06"], 1)
		assert.Len(t, layout["2025-01-07"], 1)
		assert.Empty(t, layout["2025-01-08"])
		assert.Equal(t, "mon", layout["2025-01-06"][0].ID)
		// Events alone on their day take the full width.
		assert.Equal(t, 400.0, layout["2025-01-06"][0].Width)
	})

	t.Run("multi day event appears on every covered date", func(t *testing.T) {
		events := []Event{
			{
				ID:    "offsite",
				Start: time.Date(2025, time.January, 6, 15, 0, 0, 0, location),
				End:   time.Date(2025, time.January, 8, 11, 0, 0, 0, location),
			},
		}
		pageDates := []string{"2025-01-06", "2025-01-07", "2025-01-08"}

		layout := service.LayoutRange(events, pageDates, opts)

		assert.Len(t, layout["2025-01-06"], 1)
		assert.Len(t, layout["2025-01-07"], 1)
		assert.Len(t, layout["2025-01-08"], 1)

		middle := layout["2025-01-07"][0]
		assert.Equal(t, DayTypeMiddle, middle.DayType)
		assert.Equal(t, 0.0, middle.Top)
		assert.InDelta(t, 2400.0, middle.Height, 0.01)
	})

	t.Run("all day events bypass timed layout", func(t *testing.T) {
		events := []Event{
			{
				ID:     "holiday",
				AllDay: true,
				Start:  time.Date(2025, time.January, 6, 0, 0, 0, 0, location),
				End:    time.Date(2025, time.January, 6, 0, 0, 0, 0, location),
			},
		}

		layout := service.LayoutRange(events, []string{"2025-01-06"}, opts)

		assert.Empty(t, layout["2025-01-06"])
	})
}

func TestLayoutDay(t *testing.T) {
	location, _ := time.LoadLocation("Europe/Warsaw")
	service := NewService()

	events := []Event{
		{
			ID:    "standup",
			Start: time.Date(2025, time.January, 6, 9, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 6, 9, 15, 0, 0, location),
		},
		{
			ID:    "elsewhere",
			Start: time.Date(2025, time.January, 7, 9, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 7, 10, 0, 0, 0, location),
		},
	}

	packed := service.LayoutDay("2025-01-06", events, PackOptions{ScreenWidth: 400})

	assert.Len(t, packed, 1)
	assert.Equal(t, "standup", packed[0].ID)
}
