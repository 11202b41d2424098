package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/saint0x/tutorialmaker/pkg/failure"
	"github.com/saint0x/tutorialmaker/pkg/log"
	"github.com/saint0x/tutorialmaker/pkg/tutorial"
)

const (
	// GeneratePath is the tutorial generation route
	GeneratePath = "/api/tutorial/generate"
	// HealthPath is the liveness route
	HealthPath = "/health"

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Runner executes one tutorial request
type Runner interface {
	Run(ctx context.Context, rawURL string) (*tutorial.Result, error)
}

// GenerateRequest is the body of a generate call
type GenerateRequest struct {
	URL string `json:"url"`
}

// ErrorBody is the payload of every non-2xx response
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// Server exposes the tutorial pipeline over HTTP
type Server struct {
	logger *log.Logger
	runner Runner
	port   string
	srv    *http.Server
	addr   net.Addr
	mu     sync.RWMutex
}

// New creates a new server instance listening on port once started
func New(logger *log.Logger, runner Runner, port string) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if runner == nil {
		return nil, fmt.Errorf("tutorial runner is required")
	}
	if port == "" {
		port = "8080"
	}

	if logger.IsDebug() {
		logger.Debug("Initializing server on port %s", port)
	}

	return &Server{
		logger: logger,
		runner: runner,
		port:   port,
	}, nil
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(GeneratePath, s.handleGenerate)
	mux.HandleFunc(HealthPath, s.handleHealth)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	listener, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on port %s: %w", s.port, err)
	}
	s.addr = listener.Addr()
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Success("Server is running on %s", listener.Addr())
	s.logger.Debug("Generate endpoint: POST %s", GeneratePath)

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if err != nil {
			s.logger.Error("Server error: %v", err)
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

// Addr reports the bound address, or nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Stop stops the server
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to stop server: %v", err)
			return fmt.Errorf("failed to stop server: %w", err)
		}
		s.srv = nil
		s.logger.Success("Server stopped")
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		s.writeError(w, http.StatusMethodNotAllowed, ErrorDetail{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Received generate request from %s", r.RemoteAddr)

	if r.Method != http.MethodPost {
		s.logger.Warning("Invalid method %s from %s", r.Method, r.RemoteAddr)
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, ErrorDetail{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed"})
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.logger.Warning("Failed to decode request body: %v", err)
		s.writeError(w, http.StatusBadRequest, ErrorDetail{Code: "BAD_REQUEST", Message: "Request body must be JSON with a url field"})
		return
	}
	if !isAbsoluteURL(req.URL) {
		s.writeError(w, http.StatusBadRequest, ErrorDetail{Code: "BAD_REQUEST", Message: "url must be an absolute URL"})
		return
	}

	res, err := s.runner.Run(r.Context(), req.URL)
	if err != nil {
		kind := failure.KindOf(err)
		status := http.StatusInternalServerError
		if failure.IsClientError(kind) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, ErrorDetail{
			Code:    codeFor(status),
			Kind:    string(kind),
			Message: failure.PublicMessage(err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, res)
}

func isAbsoluteURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func codeFor(status int) string {
	if status == http.StatusBadRequest {
		return "BAD_REQUEST"
	}
	return "INTERNAL_ERROR"
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail ErrorDetail) {
	s.writeJSON(w, status, ErrorBody{Error: detail})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write %d response: %v", status, err)
	}
}
