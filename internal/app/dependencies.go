package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/unify-apps/calendar-timeline/internal/config"
	"github.com/unify-apps/calendar-timeline/internal/utils"
	"github.com/unify-apps/calendar-timeline/pkg/allday"
	"github.com/unify-apps/calendar-timeline/pkg/ics"
	"github.com/unify-apps/calendar-timeline/pkg/timeline"
	"github.com/unify-apps/calendar-timeline/pkg/unavailable"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	LayoutService timeline.Service
	LayoutHandler *timeline.Handler

	UnavailableBuilder *unavailable.Builder
	UnavailableHandler *unavailable.Handler

	AllDayHandler *allday.Handler

	IcsHandler *ics.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.LayoutService = timeline.NewService()
	deps.LayoutHandler = timeline.NewHandler(deps.LayoutService, deps.Clock, timeline.PackOptions{
		ScreenWidth:          cfg.Layout.ScreenWidth,
		DayStart:             cfg.Layout.DayStart,
		HourBlockHeight:      cfg.Layout.HourBlockHeight,
		OverlapEventsSpacing: cfg.Layout.OverlapEventsSpacing,
		RightEdgeSpacing:     cfg.Layout.RightEdgeSpacing,
	})

	deps.UnavailableBuilder = unavailable.NewBuilder(log.StandardLogger())
	deps.UnavailableHandler = unavailable.NewHandler(deps.UnavailableBuilder, unavailable.Options{
		DayStart:        cfg.Layout.DayStart,
		DayEnd:          cfg.Layout.DayEnd,
		HourBlockHeight: cfg.Layout.HourBlockHeight,
	})

	deps.AllDayHandler = allday.NewHandler(allday.Options{
		MaxVisibleRows: cfg.AllDay.MaxVisibleRows,
		RowHeight:      cfg.AllDay.RowHeight,
	})

	deps.IcsHandler = ics.NewHandler()

	return deps
}
