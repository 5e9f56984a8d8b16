package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"oh-server/config"
	"oh-server/models/holiday"
	services "oh-server/service"
)

const (
	COUNTRY_QUERY_ARG = "country"
	DAYS_QUERY_ARG    = "days"
)

type HolidayHandler struct {
	holidayService *services.HolidayService
}

func NewHolidayHandler(holidayService *services.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidayService: holidayService}
}

// GetUpcomingHolidays handles GET /v1/holidays/upcoming?country&days
func (h *HolidayHandler) GetUpcomingHolidays(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	country := vals.Get(COUNTRY_QUERY_ARG)
	if country == "" {
		http.Error(w, "Missing argument "+COUNTRY_QUERY_ARG, http.StatusBadRequest)
		return
	}

	days := config.HOLIDAY_ADVISORY_WINDOW_DAYS
	if d := vals.Get(DAYS_QUERY_ARG); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid argument "+DAYS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		days = parsed
	}

	upcoming := h.holidayService.UpcomingHolidays(country, days, time.Now())
	if upcoming == nil {
		upcoming = []holiday.Entry{} // empty list, not null
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(upcoming); err != nil {
		log.Println("Error encoding response:", err)
	}
}
