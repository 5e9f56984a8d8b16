package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"oh-server/calendar"
	"oh-server/models"
	"oh-server/models/location"
	services "oh-server/service"
	"oh-server/util"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// LocationWithStatus pairs a catalog location with its live status and the
// country's nearest holiday advisory. The advisory never feeds the status
// computation; the two render side by side.
type LocationWithStatus struct {
	Location location.Location   `json:"location"`
	Status   models.StatusResult `json:"status"`
	Advisory *calendar.Advisory  `json:"holiday_advisory,omitempty"`
}

type StatusHandler struct {
	statusService  *services.StatusService
	holidayService *services.HolidayService
}

func NewStatusHandler(
	statusService *services.StatusService,
	holidayService *services.HolidayService) *StatusHandler {
	return &StatusHandler{
		statusService:  statusService,
		holidayService: holidayService,
	}
}

// GetNearbyLocations handles GET /v1/locations/nearby?lat&lon&radius
func (h *StatusHandler) GetNearbyLocations(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	locations, err := h.statusService.GetNearbyLocations(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby locations:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	result := make([]LocationWithStatus, 0, len(locations))
	for _, l := range locations {
		entry := LocationWithStatus{
			Location: l,
			Status:   h.statusService.EvaluateLocation(l, now),
		}
		if adv, ok := h.holidayService.NearestAdvisory(l.CountryCode, now); ok {
			entry.Advisory = &adv
		}
		result = append(result, entry)
	}

	// open locations first
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Status.IsOpen && !result[j].Status.IsOpen
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetLocationStatus handles GET /v1/locations/{id}/status
func (h *StatusHandler) GetLocationStatus(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["id"]

	l, err := h.statusService.GetLocation(locationID)
	if err != nil {
		log.Printf("Error loading location %s: %v", locationID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if l == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}

	status := h.statusService.EvaluateLocation(*l, time.Now())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// PlotSchedule handles GET /v1/locations/{id}/schedule/plot
func (h *StatusHandler) PlotSchedule(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["id"]

	l, err := h.statusService.GetLocation(locationID)
	if err != nil {
		log.Printf("Error loading location %s: %v", locationID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if l == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklySchedulePlot(w, *l); err != nil {
		log.Printf("Error rendering schedule plot for %s: %v", locationID, err)
	}
}

func (h *StatusHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

// Ping handles GET /ping
func (h *StatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
