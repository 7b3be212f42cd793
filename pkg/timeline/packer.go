package timeline

import (
	"sort"
	"time"
)

const (
	// DefaultHourBlockHeight is the pixel height of one hour row.
	DefaultHourBlockHeight = 100.0

	baseEventZIndex = 2
)

// PackOptions configures geometry for a single day column.
type PackOptions struct {
	// ScreenWidth is the pixel width available for layout on the day.
	ScreenWidth float64
	// DayStart is the hour offset subtracted from top, aligning the first
	// visible hour at top=0.
	DayStart float64
	// HourBlockHeight is the pixel height per hour; 0 means DefaultHourBlockHeight.
	HourBlockHeight float64
	// OverlapEventsSpacing is a trailing gap subtracted from the width of
	// events that do not reach the cluster's right edge.
	OverlapEventsSpacing float64
	// RightEdgeSpacing is reserved at the right edge of the day column.
	RightEdgeSpacing float64
}

func (o PackOptions) withDefaults() PackOptions {
	if o.HourBlockHeight == 0 {
		o.HourBlockHeight = DefaultHourBlockHeight
	}
	return o
}

// Pack lays out the segments of a single calendar day as pixel rectangles.
//
// Events are sorted deterministically (start, duration, end, original
// index), then walked greedily: overlapping events form clusters, each
// event takes the first column whose last occupant it does not collide
// with, and a cluster is flushed into geometry as soon as an event starts
// at or after everything seen so far. Within a cluster an event widens
// over collision-free columns to its right. Shorter events contained in
// longer ones, and sub-hour events in general, get a higher stacking value.
//
// Pack is pure: identical inputs produce identical geometry.
func Pack(segments []EventSegment, opts PackOptions) []PackedEvent {
	opts = opts.withDefaults()

	packed := make([]PackedEvent, len(segments))
	for i, seg := range segments {
		packed[i] = PackedEvent{EventSegment: seg, ZIndex: baseEventZIndex, order: i}
		if packed[i].End.IsZero() {
			packed[i].End = packed[i].Start.Add(time.Hour)
		}
	}

	sort.Slice(packed, func(i, j int) bool {
		a, b := &packed[i], &packed[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		da, db := eventDuration(a), eventDuration(b)
		if da != db {
			return da < db
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.order < b.order
	})

	var columns [][]*PackedEvent
	var lastEnd time.Time

	for i := range packed {
		ev := &packed[i]
		if len(columns) > 0 && !ev.Start.Before(lastEnd) {
			packOverlappingGroup(columns, opts)
			columns = nil
			lastEnd = time.Time{}
		}

		placed := false
		for ci, col := range columns {
			if !collides(col[len(col)-1], ev) {
				columns[ci] = append(col, ev)
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, []*PackedEvent{ev})
		}

		if ev.End.After(lastEnd) {
			lastEnd = ev.End
		}
	}
	if len(columns) > 0 {
		packOverlappingGroup(columns, opts)
	}

	return packed
}

// packOverlappingGroup computes geometry for one completed overlap cluster.
func packOverlappingGroup(columns [][]*PackedEvent, opts PackOptions) {
	n := float64(len(columns))
	usableWidth := opts.ScreenWidth - opts.RightEdgeSpacing

	for i, col := range columns {
		for _, ev := range col {
			span := expandColumns(ev, i, columns)
			ev.Left = float64(i) / n * usableWidth
			ev.Width = usableWidth * float64(span) / n
			if i+span < len(columns) {
				ev.Width -= opts.OverlapEventsSpacing
			}
			ev.Top = (hoursSinceMidnight(ev.Start) - opts.DayStart) * opts.HourBlockHeight
			ev.Height = ev.End.Sub(ev.Start).Hours() * opts.HourBlockHeight
		}
	}

	applyStacking(columns)
}

// expandColumns counts how many consecutive columns, starting at the
// event's own, are free of collisions with it, stopping at the first one
// that is not.
func expandColumns(ev *PackedEvent, index int, columns [][]*PackedEvent) int {
	span := 1
	for i := index + 1; i < len(columns); i++ {
		blocked := false
		for _, other := range columns[i] {
			if collides(ev, other) {
				blocked = true
				break
			}
		}
		if blocked {
			break
		}
		span++
	}
	return span
}

// applyStacking raises events whose range is fully contained in a longer
// event's range (+10 per containing ancestor, compounding) and sub-hour
// events (+5), so short appointments are painted above the events around
// them.
func applyStacking(columns [][]*PackedEvent) {
	var group []*PackedEvent
	for _, col := range columns {
		group = append(group, col...)
	}

	for _, a := range group {
		for _, b := range group {
			if a == b {
				continue
			}
			if !a.Start.Before(b.Start) && !a.End.After(b.End) && eventDuration(a) <= eventDuration(b) {
				a.ZIndex += 10
			}
		}
		if eventDuration(a) < time.Hour {
			a.ZIndex += 5
		}
	}
}

func eventDuration(ev *PackedEvent) time.Duration {
	return ev.End.Sub(ev.Start)
}

// collides reports strict time-range overlap; touching endpoints do not collide.
func collides(a, b *PackedEvent) bool {
	return a.End.After(b.Start) && a.Start.Before(b.End)
}
