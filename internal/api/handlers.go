// Package api exposes HTTP handlers for the workout summary service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/fittracker/internal/auth"
	"example.com/fittracker/internal/domain"
	"example.com/fittracker/internal/workout"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts/summary", h.summary)
	mux.HandleFunc("/v1/workouts/types", h.workoutTypes)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !authorize(w, r) {
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	summary, err := h.service.Summarize(domain.SummarizeInput{
		WorkoutType: req.WorkoutType,
		Data:        req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, workout.ErrUnknownWorkoutType):
			writeError(w, http.StatusUnprocessableEntity, "unknown_workout_type", err.Error())
		case errors.Is(err, workout.ErrArgumentCount), errors.Is(err, workout.ErrInvalidReading):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, toSummaryView(summary))
}

func (h *Handler) workoutTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if !authorize(w, r) {
		return
	}

	types := h.service.WorkoutTypes()
	resp := WorkoutTypesResponse{Items: make([]WorkoutTypeView, 0, len(types))}
	for _, wt := range types {
		resp.Items = append(resp.Items, WorkoutTypeView{
			Code:         wt.Code,
			TrainingType: wt.TrainingType,
			DataLength:   wt.Arity,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func authorize(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasAnyScope(auth.ScopeWorkoutsRead, auth.ScopeWorkoutsWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope workouts:read required")
		return false
	}
	return true
}

// SummaryRequest is the payload for POST /v1/workouts/summary.
type SummaryRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Validate ensures request correctness.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	if len(r.Data) == 0 {
		return errors.New("data is required")
	}
	return nil
}

// SummaryView is the computed summary returned to clients.
type SummaryView struct {
	WorkoutType  string  `json:"workout_type"`
	TrainingType string  `json:"training_type"`
	DurationH    float64 `json:"duration_h"`
	DistanceKm   float64 `json:"distance_km"`
	MeanSpeedKmh float64 `json:"mean_speed_kmh"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

// WorkoutTypeView describes one supported activity code.
type WorkoutTypeView struct {
	Code         string `json:"code"`
	TrainingType string `json:"training_type"`
	DataLength   int    `json:"data_length"`
}

// WorkoutTypesResponse packages the supported activity codes.
type WorkoutTypesResponse struct {
	Items []WorkoutTypeView `json:"items"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toSummaryView(s domain.Summary) SummaryView {
	return SummaryView{
		WorkoutType:  s.WorkoutType,
		TrainingType: s.TrainingType,
		DurationH:    s.Duration,
		DistanceKm:   s.Distance,
		MeanSpeedKmh: s.Speed,
		Calories:     s.Calories,
		Message:      s.Message(),
	}
}
