package timeline

import (
	log "github.com/sirupsen/logrus"
)

// SegmentEvents splits events crossing midnight into one segment per
// calendar date, clamped to day boundaries, and drops everything outside
// the visible page dates. Single-day events are emitted unmodified rather
// than wrapped. Events with a missing start or end produce nothing.
//
// For a multi-day event the first day keeps the original start and ends at
// 23:59:59.999999999, the last day starts at midnight and keeps the
// original end, and middle days span the full day. When a degenerate
// iteration lands start and end on the same date, the start tag wins.
func SegmentEvents(events []Event, pageDates []string) []EventSegment {
	visible := make(map[string]struct{}, len(pageDates))
	for _, d := range pageDates {
		visible[d] = struct{}{}
	}

	segments := make([]EventSegment, 0, len(events))
	for i := range events {
		ev := events[i]
		if ev.Start.IsZero() || ev.End.IsZero() {
			log.Tracef("skipping event %q without start or end", ev.ID)
			continue
		}
		if ev.End.Before(ev.Start) {
			log.Debugf("skipping event %q with end before start", ev.ID)
			continue
		}

		// The end is viewed in the start's location so both dates sit on
		// one day axis. With mixed UTC offsets the end's own date string
		// can precede the start's, and the day walk would never reach it.
		startDate := DateOf(ev.Start)
		endDate := DateOf(ev.End.In(ev.Start.Location()))

		if startDate == endDate {
			if _, ok := visible[startDate]; ok {
				segments = append(segments, EventSegment{
					Event:       ev,
					SegmentDate: startDate,
				})
			}
			continue
		}

		original := events[i]
		dayCount := 0
		for day := ev.Start; ; day = day.AddDate(0, 0, 1) {
			date := DateOf(day)
			if _, ok := visible[date]; ok {
				seg := EventSegment{
					Event:          ev,
					SegmentDate:    date,
					IsEventSegment: true,
					Original:       &original,
				}
				switch {
				case dayCount == 0:
					seg.DayType = DayTypeStart
					seg.Start = ev.Start
					seg.End = endOfDay(day)
				case date == endDate:
					seg.DayType = DayTypeEnd
					seg.Start = startOfDay(day)
					seg.End = ev.End
				default:
					seg.DayType = DayTypeMiddle
					seg.Start = startOfDay(day)
					seg.End = endOfDay(day)
				}
				segments = append(segments, seg)
			}
			dayCount++
			if date == endDate {
				break
			}
		}
	}
	return segments
}
