// Package api implements the PlotSync HTTP interface.
//
// The server exposes the solve pipeline over REST:
//
//	POST /v1/solve     run the full pipeline for a specification
//	POST /v1/validate  re-run the multi-pass gate over a floorplan
//	GET  /healthz      liveness probe
//
// Solve requests carry the specification together with pipeline options and
// return the complete result: floorplan, validation report, cost breakdown,
// and all variations. Validation failures are part of the response body, not
// HTTP errors; only malformed or infeasible input fails a request.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/Indusoptima/plotsync-sub001/pkg/errors"
	"github.com/Indusoptima/plotsync-sub001/pkg/observability"
	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// shutdownTimeout bounds graceful shutdown on Serve's context cancellation.
const shutdownTimeout = 10 * time.Second

// Server wires the solve pipeline into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around an existing runner. A nil logger uses
// the default.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/validate", s.handleValidate)
	})
	return r
}

// Serve runs the server on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// observe reports request and response events to the registered API hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// solveRequest is the POST /v1/solve body.
type solveRequest struct {
	Spec    plan.Spec        `json:"spec"`
	Options pipeline.Options `json:"options"`
}

// validateRequest is the POST /v1/validate body.
type validateRequest struct {
	Floorplan plan.Floorplan `json:"floorplan"`
}

// errorResponse is the body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(apperrors.ErrCodeInvalidSpec),
			Message: "malformed request body: " + err.Error(),
		})
		return
	}

	result, err := s.runner.Solve(r.Context(), &req.Spec, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(apperrors.ErrCodeInvalidLayout),
			Message: "malformed request body: " + err.Error(),
		})
		return
	}

	report := s.runner.Validate(r.Context(), &req.Floorplan)
	writeJSON(w, http.StatusOK, report)
}

// writeError maps pipeline error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidSpec, apperrors.ErrCodeInvalidOptions, apperrors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	case apperrors.ErrCodeInfeasibleSpec:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
