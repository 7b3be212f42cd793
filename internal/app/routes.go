package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Timed-event layout
	r.HandleFunc("/api/layout/day", deps.LayoutHandler.LayoutDay).Methods("POST")
	r.HandleFunc("/api/layout/range", deps.LayoutHandler.LayoutRange).Methods("POST")

	// All-day lane
	r.HandleFunc("/api/layout/allday", deps.AllDayHandler.LayoutLane).Methods("POST")

	// Unavailable hours
	r.HandleFunc("/api/layout/unavailable", deps.UnavailableHandler.BuildBlocks).Methods("POST")

	// ICS import
	r.HandleFunc("/api/events/ics", deps.IcsHandler.ImportEvents).Methods("POST")
}
