package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/amaumene/responder/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
	homeFormat      = "%sversion=%s\n"
	secretFormat    = "API_KEY=%s\n"
	statusOK        = "ok"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HTTPHandler struct {
	cfg *config.Config
}

func NewHTTPHandler(cfg *config.Config) *HTTPHandler {
	return &HTTPHandler{cfg: cfg}
}

// Routes returns a router serving all endpoints with request logging.
func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(middleware.GetHead)
	h.RegisterRoutes(r)
	return r
}

func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/health", h.handleHealth)
	r.Get("/secret", h.handleSecret)
}

func (h *HTTPHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.writeText(w, http.StatusOK, fmt.Sprintf(homeFormat, h.cfg.Message, h.cfg.Version))
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:  statusOK,
		Version: h.cfg.Version,
	})
}

func (h *HTTPHandler) handleSecret(w http.ResponseWriter, r *http.Request) {
	h.writeText(w, http.StatusOK, fmt.Sprintf(secretFormat, h.cfg.APIKey))
}

func (h *HTTPHandler) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		log.WithField("error", err).Error("failed to write text response")
	}
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithField("error", err).Error("failed to encode json response")
	}
}
