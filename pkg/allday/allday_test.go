package allday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unify-apps/calendar-timeline/pkg/timeline"
)

func allDayEvent(id string, start, end time.Time) timeline.Event {
	return timeline.Event{ID: id, AllDay: true, Start: start, End: end}
}

func chipsByID(lane Lane) map[string]Chip {
	byID := make(map[string]Chip, len(lane.Chips))
	for _, chip := range lane.Chips {
		byID[chip.ID] = chip
	}
	return byID
}

func TestLayout(t *testing.T) {
	location, _ := time.LoadLocation("Europe/Warsaw")
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, location)
	}
	pageDates := []string{"2025-01-06", "2025-01-07", "2025-01-08"}
	opts := Options{MaxVisibleRows: 2, ColumnWidth: 100, RowHeight: 30}

	t.Run("spanning chip takes one row across its columns", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("banner", day(6), day(8)),
		}, pageDates, opts)

		assert.Len(t, lane.Chips, 1)
		chip := lane.Chips[0]
		assert.Equal(t, 0, chip.Row)
		assert.Equal(t, 0, chip.StartColumn)
		assert.Equal(t, 3, chip.ColumnSpan)
		assert.True(t, chip.Visible)
		assert.Equal(t, 0.0, chip.Left)
		assert.Equal(t, 300.0, chip.Width)
		assert.Equal(t, 0.0, chip.Top)
		assert.Empty(t, lane.Overflow)
	})

	t.Run("overlapping chips stack into rows", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("a", day(6), day(7)),
			allDayEvent("b", day(7), day(8)),
		}, pageDates, opts)

		byID := chipsByID(lane)
		assert.Equal(t, 0, byID["a"].Row)
		assert.Equal(t, 1, byID["b"].Row)
		assert.Equal(t, 30.0, byID["b"].Top)
	})

	t.Run("disjoint chips share a row", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("a", day(6), day(6)),
			allDayEvent("b", day(8), day(8)),
		}, pageDates, opts)

		byID := chipsByID(lane)
		assert.Equal(t, 0, byID["a"].Row)
		assert.Equal(t, 0, byID["b"].Row)
	})

	t.Run("chips beyond the visible rows overflow per date", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("a", day(6), day(7)),
			allDayEvent("b", day(6), day(6)),
			allDayEvent("c", day(6), day(7)),
		}, pageDates, opts)

		// Both two-day chips outrank the single-day one, which drops to
		// the third, hidden row.
		byID := chipsByID(lane)
		assert.True(t, byID["a"].Visible)
		assert.True(t, byID["c"].Visible)
		assert.False(t, byID["b"].Visible)
		assert.Equal(t, 2, byID["b"].Row)
		assert.Equal(t, map[string]int{"2025-01-06": 1}, lane.Overflow)
	})

	t.Run("wider chips win the upper rows", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("narrow", day(6), day(6)),
			allDayEvent("wide", day(6), day(8)),
		}, pageDates, opts)

		byID := chipsByID(lane)
		assert.Equal(t, 0, byID["wide"].Row)
		assert.Equal(t, 1, byID["narrow"].Row)
	})

	t.Run("chips are clipped to the visible page", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("spill", day(5), day(7)),
		}, pageDates, opts)

		assert.Len(t, lane.Chips, 1)
		chip := lane.Chips[0]
		assert.Equal(t, 0, chip.StartColumn)
		assert.Equal(t, 2, chip.ColumnSpan)
	})

	t.Run("off page and timed events are ignored", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			allDayEvent("elsewhere", day(1), day(2)),
			{ID: "timed", Start: day(6).Add(9 * time.Hour), End: day(6).Add(10 * time.Hour)},
		}, pageDates, opts)

		assert.Empty(t, lane.Chips)
	})

	t.Run("mixed utc offsets clip along the start's day axis", func(t *testing.T) {
		plus14 := time.FixedZone("UTC+14", 14*60*60)
		minus11 := time.FixedZone("UTC-11", -11*60*60)
		// The end is after the start in absolute time, but its own local
		// date string is a day earlier.
		lane := Layout([]timeline.Event{
			{
				ID:     "offset",
				AllDay: true,
				Start:  time.Date(2025, time.January, 7, 1, 0, 0, 0, plus14),
				End:    time.Date(2025, time.January, 6, 23, 0, 0, 0, minus11),
			},
		}, pageDates, opts)

		assert.Len(t, lane.Chips, 1)
		assert.Equal(t, 1, lane.Chips[0].StartColumn)
		assert.Equal(t, 2, lane.Chips[0].ColumnSpan)
	})

	t.Run("event without an end covers a single day", func(t *testing.T) {
		lane := Layout([]timeline.Event{
			{ID: "open", AllDay: true, Start: day(7)},
		}, pageDates, opts)

		assert.Len(t, lane.Chips, 1)
		assert.Equal(t, 1, lane.Chips[0].StartColumn)
		assert.Equal(t, 1, lane.Chips[0].ColumnSpan)
	})
}
