package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/car-sales-analytics/internal/dashboard"
	"github.com/ukydev/car-sales-analytics/internal/models"
	"github.com/ukydev/car-sales-analytics/internal/web"
)

var indexTmpl = template.Must(template.ParseFS(web.Static, "static/index.html"))

// DashboardHandler serves the dashboard page and its JSON API.
type DashboardHandler struct {
	service *dashboard.Service
	title   string
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *dashboard.Service, title string) *DashboardHandler {
	return &DashboardHandler{service: service, title: title}
}

// RegisterRoutes attaches the dashboard routes to the router.
func (h *DashboardHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard", h.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/filters/options", h.FilterOptions).Methods(http.MethodGet)
	r.HandleFunc("/api/cars", h.Cars).Methods(http.MethodGet)
	r.HandleFunc("/api/cars/{id}", h.CarDetail).Methods(http.MethodGet)
}

// Index serves the single-page dashboard.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]string{"Title": h.title}); err != nil {
		log.WithError(err).Error("Failed to render index page")
	}
}

// Dashboard runs a full render pass for the query-encoded filter selection.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := h.service.Render(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// FilterOptions returns the widget option sets and bounds.
func (h *DashboardHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.FilterOptions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// Cars returns the filtered selector list for the detail viewer.
func (h *DashboardHandler) Cars(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cars, err := h.service.CarList(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// CarDetail returns one car's joined detail view.
func (h *DashboardHandler) CarDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detail, err := h.service.CarDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// parseFilter decodes a FilterSelection from URL query parameters. Absent
// parameters keep their "all" defaults.
func parseFilter(r *http.Request) (models.FilterSelection, error) {
	var f models.FilterSelection
	q := r.URL.Query()

	f.Manufacturer = q.Get("manufacturer")
	for _, fuel := range q["fuel"] {
		for _, part := range strings.Split(fuel, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.FuelTypes = append(f.FuelTypes, part)
			}
		}
	}

	var err error
	if f.DealerID, err = intParam(q.Get("dealer")); err != nil {
		return f, err
	}
	if f.PriceMin, err = floatParam(q.Get("price_min")); err != nil {
		return f, err
	}
	if f.PriceMax, err = floatParam(q.Get("price_max")); err != nil {
		return f, err
	}
	if f.YearMin, err = intParam(q.Get("year_min")); err != nil {
		return f, err
	}
	if f.YearMax, err = intParam(q.Get("year_max")); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func floatParam(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the dashboard error taxonomy onto HTTP statuses:
// a missing car is 404, a failed render pass is 502, anything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case dashboard.IsNotFound(err):
		writeError(w, http.StatusNotFound, "no matching car")
	case dashboard.IsQueryError(err):
		log.WithError(err).Error("Render pass failed")
		writeError(w, http.StatusBadGateway, "query failed")
	default:
		log.WithError(err).Error("Unexpected error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
