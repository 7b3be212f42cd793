package ics

import (
	"errors"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/unify-apps/calendar-timeline/pkg/timeline"
)

var ErrEmptyCalendar = errors.New("empty ICS payload")

// Parse converts an iCalendar stream into layout-ready events.
//
// VEVENTs without a DTSTART are skipped with a warning. VEVENTs carrying
// an RRULE are imported as their base instance only; recurrence expansion
// is out of scope. All-day detection follows DTSTART: VALUE=DATE or a
// date-only value. Description and location survive in the event's Extra
// map; a VEVENT without a UID gets a generated one.
func Parse(r io.Reader) ([]timeline.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, err
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, ErrEmptyCalendar
	}

	events := make([]timeline.Event, 0, len(vevents))
	for _, ve := range vevents {
		ev, ok := eventFromVEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	log.Debugf("parsed %d events from ICS payload", len(events))
	return events, nil
}

func eventFromVEvent(ve *ical.VEvent) (timeline.Event, bool) {
	var ev timeline.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		ev.ID = p.Value
	} else {
		ev.ID = uuid.NewString()
	}

	start, err := ve.GetStartAt()
	if err != nil {
		log.Warnf("skipping VEVENT %s without a parseable DTSTART: %v", ev.ID, err)
		return timeline.Event{}, false
	}
	ev.Start = start
	if end, err := ve.GetEndAt(); err == nil {
		ev.End = end
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if p := ve.GetProperty("COLOR"); p != nil {
		ev.Color = p.Value
	}

	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil && p.Value != "" {
		setExtra(&ev, "description", p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil && p.Value != "" {
		setExtra(&ev, "location", p.Value)
	}

	ev.AllDay = isAllDay(ve)

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil && p.Value != "" {
		log.Debugf("VEVENT %s has an RRULE; importing base instance only", ev.ID)
	}

	return ev, true
}

// isAllDay inspects DTSTART: VALUE=DATE parameter or a date-only value.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func setExtra(ev *timeline.Event, key string, value any) {
	if ev.Extra == nil {
		ev.Extra = make(map[string]any)
	}
	ev.Extra[key] = value
}
