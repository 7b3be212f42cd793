package timeline

import (
	"time"
)

// DateLayout is the calendar-date format used to bucket events into days.
// Dates are always formatted in the timestamp's own location.
const DateLayout = "2006-01-02"

type DayType string

const (
	DayTypeStart  DayType = "start"
	DayTypeMiddle DayType = "middle"
	DayTypeEnd    DayType = "end"
)

// Event is the base temporal entity. A zero Start or End means the value
// is absent. Extra carries arbitrary caller fields (ids, colors, payloads)
// and is passed through every transformation without interpretation.
type Event struct {
	ID     string
	Title  string
	Color  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Extra  map[string]any
}

// EventSegment is the portion of an event visible on one calendar date.
// Single-day events pass through with IsEventSegment=false and a nil
// Original. For split pieces, Original points at the untouched source
// event so user interaction on any day reports the complete event.
type EventSegment struct {
	Event
	SegmentDate    string
	IsEventSegment bool
	DayType        DayType
	Original       *Event
}

// PackedEvent is a segment augmented with pixel geometry in the hour-row
// coordinate space. ZIndex is a relative paint-order score; callers decide
// paint order from it, not from slice order.
type PackedEvent struct {
	EventSegment
	Top    float64
	Height float64
	Left   float64
	Width  float64
	ZIndex int

	order int
}

// DateOf returns the calendar-date string for t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func hoursSinceMidnight(t time.Time) float64 {
	return t.Sub(startOfDay(t)).Hours()
}
