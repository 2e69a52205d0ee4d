// Package server exposes the calculation engine over HTTP. The engine
// itself is stateless and pure; the server owns all I/O concerns (decoding,
// validation errors as 400s, logging, CORS).
package server

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/expatfin/rentenscore/internal/calculation"
	"github.com/expatfin/rentenscore/internal/config"
	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/expatfin/rentenscore/internal/output"
)

// Version is stamped at build time.
var Version = "dev"

// Server wires the engine to its HTTP surface.
type Server struct {
	engine *calculation.Engine
	log    *zap.Logger
	cfg    *config.ServiceConfig
}

// New creates a server around the given engine.
func New(engine *calculation.Engine, log *zap.Logger, cfg *config.ServiceConfig) *Server {
	return &Server{engine: engine, log: log, cfg: cfg}
}

// apiResponse is the uniform envelope for every JSON response.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// calculateData is the success payload of POST /api/calculate.
type calculateData struct {
	Results *domain.RetirementResult `json:"results"`
	Score   output.ScoreView         `json:"score"`
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/calculate", s.handleCalculate)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.withRequestLog(mux))
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("server listening", zap.String("addr", addr))

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// withRequestLog tags each request with an ID and logs method, path,
// and duration.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "rentenscore",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	profile, err := config.ValidateRaw(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The engine is pure arithmetic over a validated profile; a panic here
	// is a programming defect, surfaced as a generic 500 and never retried.
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("calculation panic", zap.Any("panic", rec))
			s.writeError(w, http.StatusInternalServerError, "internal calculation error")
		}
	}()

	result := s.engine.Calculate(profile)
	s.writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: calculateData{
			Results: result,
			Score:   output.BuildScoreView(result),
		},
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, apiResponse{Success: false, Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}
