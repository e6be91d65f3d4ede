// Package server exposes the resolver over HTTP.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/j0lvera/arlo/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 1 << 20
)

// Resolver answers a query and reports how the reply was produced.
type Resolver interface {
	Explain(ctx context.Context, query string) assistant.Resolution
}

type processRequest struct {
	Message string `json:"message"`
}

type processResponse struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
	Source string `json:"source"`
}

// NewHandler returns the HTTP routes of the assistant.
func NewHandler(resolver Resolver, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(withRequestID(logger), observe)

	r.HandleFunc("/process", processHandler(resolver)).Methods(http.MethodPost)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// processHandler resolves the "message" field of the JSON body. A body that
// is not valid JSON counts as an empty message.
func processHandler(resolver Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		var req processRequest
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			log.Warn().Err(err).Msg("unable to read request body")
		} else if err := json.Unmarshal(body, &req); err != nil {
			log.Debug().Err(err).Msg("request body is not valid JSON")
			req = processRequest{}
		}

		res := resolver.Explain(r.Context(), req.Message)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(processResponse{
			Reply:  res.Reply,
			Intent: res.Intent,
			Source: string(res.Source),
		}); err != nil {
			log.Error().Err(err).Msg("unable to write response")
		}
	}
}

// withRequestID tags each request with a UUID, echoes it in the response and
// stores a request-scoped logger in the context.
func withRequestID(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			l := logger.With().Str("request_id", id).Logger()
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		metrics.RequestDuration.WithLabelValues("http").Observe(elapsed.Seconds())
		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", elapsed).
			Msg("request handled")
	})
}
