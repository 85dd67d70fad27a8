package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

type Server struct {
	logger    *slog.Logger
	decisions decisionUseCase

	srv *http.Server
}

func New(logger *slog.Logger, decisions decisionUseCase, port string, timeouts Timeouts) *Server {
	server := &Server{
		logger:    logger.With("component", "rest"),
		decisions: decisions,
	}

	server.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      server.Handler(),
		ReadTimeout:  timeouts.Read,
		WriteTimeout: timeouts.Write,
		IdleTimeout:  timeouts.Idle,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /ai-moves", that.handleFormMove)
	mux.HandleFunc("POST /api/v1/moves", that.handleJSONMove)
	mux.HandleFunc("GET /api/v1/decisions/{id}", that.handleGetDecision)
	mux.HandleFunc("DELETE /api/v1/decisions/{id}", that.handleDeleteDecision)

	return mux
}

// Start - serves HTTP until Shutdown is called.
func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
