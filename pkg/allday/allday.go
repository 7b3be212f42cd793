package allday

import (
	"sort"
	"time"

	"github.com/unify-apps/calendar-timeline/pkg/timeline"
)

const (
	DefaultMaxVisibleRows = 2
	DefaultRowHeight      = 32.0
)

// Chip is an all-day event placed in the all-day lane. StartColumn and
// ColumnSpan are day-column indices into the page dates; Row is the lane
// row. Chips beyond the visible row limit are marked hidden and counted
// in the lane's per-date overflow.
type Chip struct {
	timeline.Event
	Row         int
	StartColumn int
	ColumnSpan  int
	Visible     bool
	Left        float64
	Width       float64
	Top         float64
}

// Lane is the laid-out all-day strip for one page of dates.
type Lane struct {
	Chips []Chip
	// Overflow counts hidden chips per covered page date, for "+N more".
	Overflow map[string]int
}

type Options struct {
	// MaxVisibleRows caps the rows rendered before chips overflow; 0
	// means DefaultMaxVisibleRows.
	MaxVisibleRows int
	ColumnWidth    float64
	// RowHeight is the pixel height per lane row; 0 means DefaultRowHeight.
	RowHeight float64
}

func (o Options) withDefaults() Options {
	if o.MaxVisibleRows == 0 {
		o.MaxVisibleRows = DefaultMaxVisibleRows
	}
	if o.RowHeight == 0 {
		o.RowHeight = DefaultRowHeight
	}
	return o
}

// Layout arranges all-day events into lane rows across the page's day
// columns. Each chip takes the lowest row that is free across its whole
// column span. Timed events and events not touching the page are ignored.
func Layout(events []timeline.Event, pageDates []string, opts Options) Lane {
	opts = opts.withDefaults()

	columnByDate := make(map[string]int, len(pageDates))
	for i, date := range pageDates {
		columnByDate[date] = i
	}

	type candidate struct {
		event    timeline.Event
		startCol int
		endCol   int
		order    int
	}

	var candidates []candidate
	for i, ev := range events {
		if !ev.AllDay || ev.Start.IsZero() {
			continue
		}
		end := ev.End
		if end.IsZero() || end.Before(ev.Start) {
			end = ev.Start
		}
		startCol, endCol, ok := clipToPage(ev.Start, end, columnByDate)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{ev, startCol, endCol, i})
	}

	// Wider chips first within a start column, so long banners take the
	// upper rows; original order breaks remaining ties.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.startCol != b.startCol {
			return a.startCol < b.startCol
		}
		spanA, spanB := a.endCol-a.startCol, b.endCol-b.startCol
		if spanA != spanB {
			return spanA > spanB
		}
		return a.order < b.order
	})

	var occupied [][]bool // row -> column
	lane := Lane{
		Chips:    make([]Chip, 0, len(candidates)),
		Overflow: make(map[string]int),
	}

	for _, c := range candidates {
		row := 0
		for ; row < len(occupied); row++ {
			if rowFree(occupied[row], c.startCol, c.endCol) {
				break
			}
		}
		if row == len(occupied) {
			occupied = append(occupied, make([]bool, len(pageDates)))
		}
		for col := c.startCol; col <= c.endCol; col++ {
			occupied[row][col] = true
		}

		span := c.endCol - c.startCol + 1
		chip := Chip{
			Event:       c.event,
			Row:         row,
			StartColumn: c.startCol,
			ColumnSpan:  span,
			Visible:     row < opts.MaxVisibleRows,
			Left:        float64(c.startCol) * opts.ColumnWidth,
			Width:       float64(span) * opts.ColumnWidth,
			Top:         float64(row) * opts.RowHeight,
		}
		if !chip.Visible {
			for col := c.startCol; col <= c.endCol; col++ {
				lane.Overflow[pageDates[col]]++
			}
		}
		lane.Chips = append(lane.Chips, chip)
	}

	return lane
}

// clipToPage maps an event's date span onto page column indices, clamped
// to the visible page. Events entirely off-page report ok=false.
func clipToPage(start, end time.Time, columnByDate map[string]int) (int, int, bool) {
	startCol, endCol := -1, -1
	// Both endpoints stay on the start's day axis; with mixed UTC offsets
	// the end's own date string can precede the start's, and the walk
	// below would never reach it.
	endDate := timeline.DateOf(end.In(start.Location()))
	for day := start; ; day = day.AddDate(0, 0, 1) {
		if col, ok := columnByDate[timeline.DateOf(day)]; ok {
			if startCol == -1 || col < startCol {
				startCol = col
			}
			if col > endCol {
				endCol = col
			}
		}
		if timeline.DateOf(day) == endDate {
			break
		}
	}
	if startCol == -1 {
		return 0, 0, false
	}
	return startCol, endCol, true
}

func rowFree(row []bool, startCol, endCol int) bool {
	for col := startCol; col <= endCol; col++ {
		if row[col] {
			return false
		}
	}
	return true
}
