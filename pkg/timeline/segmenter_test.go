package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSegmentEvents(t *testing.T) {
	location, _ := time.LoadLocation("Europe/Warsaw")

	t.Run("single day event passes through unmodified", func(t *testing.T) {
		event := Event{
			ID:    "e1",
			Start: time.Date(2025, time.January, 10, 9, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 10, 10, 30, 0, 0, location),
			Extra: map[string]any{"room": "B12"},
		}

		segments := SegmentEvents([]Event{event}, []string{"2025-01-10"})

		assert.Len(t, segments, 1)
		assert.Equal(t, event, segments[0].Event)
		assert.Equal(t, "2025-01-10", segments[0].SegmentDate)
		assert.False(t, segments[0].IsEventSegment)
		assert.Nil(t, segments[0].Original)
		assert.Empty(t, segments[0].DayType)
	})

	t.Run("single day event outside page dates produces nothing", func(t *testing.T) {
		event := Event{
			ID:    "e1",
			Start: time.Date(2025, time.January, 10, 9, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 10, 10, 0, 0, 0, location),
		}

		segments := SegmentEvents([]Event{event}, []string{"2025-01-11", "2025-01-12"})

		assert.Empty(t, segments)
	})

	t.Run("event with missing start or end produces nothing", func(t *testing.T) {
		noEnd := Event{ID: "e1", Start: time.Date(2025, time.January, 10, 9, 0, 0, 0, location)}
		noStart := Event{ID: "e2", End: time.Date(2025, time.January, 10, 10, 0, 0, 0, location)}

		segments := SegmentEvents([]Event{noEnd, noStart}, []string{"2025-01-10"})

		assert.Empty(t, segments)
	})

	t.Run("three day event yields start, middle and end segments", func(t *testing.T) {
		event := Event{
			ID:    "multi",
			Start: time.Date(2025, time.January, 1, 10, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 3, 14, 0, 0, 0, location),
		}
		pageDates := []string{"2025-01-01", "2025-01-02", "2025-01-03"}

		segments := SegmentEvents([]Event{event}, pageDates)

		assert.Len(t, segments, 3)

		assert.Equal(t, "2025-01-01", segments[0].SegmentDate)
		assert.Equal(t, DayTypeStart, segments[0].DayType)
		assert.Equal(t, event.Start, segments[0].Start)
		assert.Equal(t, time.Date(2025, time.January, 1, 23, 59, 59, 999999999, location), segments[0].End)

		assert.Equal(t, "2025-01-02", segments[1].SegmentDate)
		assert.Equal(t, DayTypeMiddle, segments[1].DayType)
		assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, location), segments[1].Start)
		assert.Equal(t, time.Date(2025, time.January, 2, 23, 59, 59, 999999999, location), segments[1].End)

		assert.Equal(t, "2025-01-03", segments[2].SegmentDate)
		assert.Equal(t, DayTypeEnd, segments[2].DayType)
		assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, location), segments[2].Start)
		assert.Equal(t, event.End, segments[2].End)

		for _, seg := range segments {
			assert.True(t, seg.IsEventSegment)
			assert.NotNil(t, seg.Original)
			assert.Equal(t, event, *seg.Original)
		}
	})

	t.Run("segments cover exactly the intersection of span and page dates", func(t *testing.T) {
		event := Event{
			ID:    "multi",
			Start: time.Date(2025, time.March, 1, 18, 0, 0, 0, location),
			End:   time.Date(2025, time.March, 5, 8, 0, 0, 0, location),
		}
		pageDates := []string{"2025-03-02", "2025-03-03", "2025-03-06"}

		segments := SegmentEvents([]Event{event}, pageDates)

		dates := make([]string, 0, len(segments))
		for _, seg := range segments {
			dates = append(dates, seg.SegmentDate)
		}
		assert.Equal(t, []string{"2025-03-02", "2025-03-03"}, dates)
		assert.Equal(t, DayTypeMiddle, segments[0].DayType)
		assert.Equal(t, DayTypeMiddle, segments[1].DayType)
	})

	t.Run("two day event has no middle segment", func(t *testing.T) {
		event := Event{
			ID:    "overnight",
			Start: time.Date(2025, time.January, 1, 23, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 2, 1, 0, 0, 0, location),
		}

		segments := SegmentEvents([]Event{event}, []string{"2025-01-01", "2025-01-02"})

		assert.Len(t, segments, 2)
		assert.Equal(t, DayTypeStart, segments[0].DayType)
		assert.Equal(t, DayTypeEnd, segments[1].DayType)
	})

	t.Run("mixed utc offsets bucket along the start's day axis", func(t *testing.T) {
		plus14 := time.FixedZone("UTC+14", 14*60*60)
		minus11 := time.FixedZone("UTC-11", -11*60*60)
		// The end is after the start in absolute time, but its own local
		// date string is a day earlier.
		event := Event{
			ID:    "offset",
			Start: time.Date(2025, time.January, 2, 1, 0, 0, 0, plus14),
			End:   time.Date(2025, time.January, 1, 23, 0, 0, 0, minus11),
		}

		segments := SegmentEvents([]Event{event}, []string{"2025-01-01", "2025-01-02", "2025-01-03"})

		assert.Len(t, segments, 2)
		assert.Equal(t, "2025-01-02", segments[0].SegmentDate)
		assert.Equal(t, DayTypeStart, segments[0].DayType)
		assert.Equal(t, "2025-01-03", segments[1].SegmentDate)
		assert.Equal(t, DayTypeEnd, segments[1].DayType)
	})

	t.Run("passthrough fields survive splitting", func(t *testing.T) {
		event := Event{
			ID:    "multi",
			Title: "Conference",
			Color: "#ff0000",
			Start: time.Date(2025, time.January, 1, 10, 0, 0, 0, location),
			End:   time.Date(2025, time.January, 2, 14, 0, 0, 0, location),
			Extra: map[string]any{"organizer": "ops"},
		}

		segments := SegmentEvents([]Event{event}, []string{"2025-01-01", "2025-01-02"})

		assert.Len(t, segments, 2)
		for _, seg := range segments {
			assert.Equal(t, "Conference", seg.Title)
			assert.Equal(t, "#ff0000", seg.Color)
			assert.Equal(t, map[string]any{"organizer": "ops"}, seg.Extra)
		}
	})
}
