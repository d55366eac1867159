package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"takeaway/stats-svc/internal/domain"
	"takeaway/stats-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats service.StatsServiceInterface
}

func NewHandler(svc service.StatsServiceInterface) *Handler {
	return &Handler{Stats: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/stats/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/stats/restaurants/{id:[0-9]+}", h.getRestaurantStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "stats-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(w, r, domain.ErrInvalidLimit)
			return
		}
		limit = n
	}

	ranks, err := h.Stats.TopToday(r.Context(), limit)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ranks, "success")
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, nil, "invalid id")
		return
	}

	stats, err := h.Stats.Restaurant(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats, "success")
}
