package questions

import (
	"encoding/json"
	"net/http"

	"github.com/ArushKhare/LockedInterview/internal/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the API endpoints on r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/questions", h.ListQuestions).Methods(http.MethodGet)
	api.HandleFunc("/pools", h.ListPools).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(NotFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method " + r.Method + " not allowed"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{OK: true})
}

// ListQuestions serves GET /api/questions?type=&role=&level=&style=.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.InterviewFilter{
		Type:  query.Get("type"),
		Role:  query.Get("role"),
		Level: query.Get("level"),
		Style: query.Get("style"),
	}.WithDefaults()

	questions, pool := h.service.GetQuestions(filter)
	h.logger.Debug("questions sampled",
		zap.String("type", filter.Type),
		zap.String("role", filter.Role),
		zap.String("level", filter.Level),
		zap.String("style", filter.Style),
		zap.String("pool", string(pool)),
		zap.Int("count", len(questions)),
	)

	writeJSON(w, http.StatusOK, models.QuestionsResponse{Questions: questions})
}

func (h *Handler) ListPools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.PoolListResponse{Pools: h.service.ListPools()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
