package timeline

import (
	log "github.com/sirupsen/logrus"
)

// Service turns raw events into per-day packed layouts.
type Service interface {
	// LayoutDay packs the events visible on a single calendar date.
	LayoutDay(date string, events []Event, opts PackOptions) []PackedEvent
	// LayoutRange packs the events visible on each of the given page
	// dates, keyed by date. Every page date is present in the result,
	// empty days included.
	LayoutRange(events []Event, pageDates []string, opts PackOptions) map[string][]PackedEvent
}

type ServiceImpl struct{}

func NewService() *ServiceImpl {
	return &ServiceImpl{}
}

func (s *ServiceImpl) LayoutDay(date string, events []Event, opts PackOptions) []PackedEvent {
	segments := SegmentEvents(timedOnly(events), []string{date})
	return Pack(segments, opts)
}

func (s *ServiceImpl) LayoutRange(events []Event, pageDates []string, opts PackOptions) map[string][]PackedEvent {
	segments := SegmentEvents(timedOnly(events), pageDates)

	byDate := make(map[string][]EventSegment, len(pageDates))
	for _, seg := range segments {
		byDate[seg.SegmentDate] = append(byDate[seg.SegmentDate], seg)
	}

	layout := make(map[string][]PackedEvent, len(pageDates))
	for _, date := range pageDates {
		layout[date] = Pack(byDate[date], opts)
	}
	log.Debugf("laid out %d segments over %d days", len(segments), len(pageDates))
	return layout
}

// timedOnly drops all-day events; they bypass timed layout entirely.
func timedOnly(events []Event) []Event {
	timed := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		timed = append(timed, ev)
	}
	return timed
}
