package server

import (
	"github.com/gorilla/mux"

	"oh-server/server/handlers"
)

type Router struct {
	statusHandler  *handlers.StatusHandler
	holidayHandler *handlers.HolidayHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	statusHandler *handlers.StatusHandler,
	holidayHandler *handlers.HolidayHandler,
	router *mux.Router) *Router {
	return &Router{
		statusHandler:  statusHandler,
		holidayHandler: holidayHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius_km(float)}
	r.router.HandleFunc("/v1/locations/nearby", r.statusHandler.GetNearbyLocations).Methods("GET")

	r.router.HandleFunc("/v1/locations/{id}/status", r.statusHandler.GetLocationStatus).Methods("GET")
	r.router.HandleFunc("/v1/locations/{id}/schedule/plot", r.statusHandler.PlotSchedule).Methods("GET")

	// expects ?country={ISO country code}&days={window(int), optional}
	r.router.HandleFunc("/v1/holidays/upcoming", r.holidayHandler.GetUpcomingHolidays).Methods("GET")

	r.router.HandleFunc("/ping", r.statusHandler.Ping).Methods("GET")
}
