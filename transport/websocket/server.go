package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

const (
	readLimit    = 1 << 16
	writeTimeout = 10 * time.Second
)

type decisionUseCase interface {
	Decide(ctx context.Context, req usecase.MoveRequest) (*entity.Decision, error)
	GetDecision(ctx context.Context, id string) (*entity.Decision, error)
	DeleteDecision(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, message *Message) (any, error)

type Server struct {
	logger    *slog.Logger
	decisions decisionUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, decisions decisionUseCase) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		decisions: decisions,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionGetDecision] = server.handleGetDecision
	server.handlers[actionDeleteDecision] = server.handleDeleteDecision

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConn(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConn - accepts the connection and answers messages until it closes.
func (that *Server) serveConn(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConn", "remote", r.RemoteAddr)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	conn.SetReadLimit(readLimit)

	connCtx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		case <-connCtx.Done():
		}
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Info("websocket closed", "error", err)
		return
	}

	_ = conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		var response any

		// a malformed frame is answered like any other bad request
		if err = json.Unmarshal(data, &message); err != nil {
			log.Info("malformed message", "error", err)
			response = newErrorMessage("", fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err), "invalid_request")
		} else {
			response = that.dispatch(ctx, &message)
		}

		writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		err = wsjson.Write(writeCtx, conn, response)
		cancel()

		if err != nil {
			log.Error("failed to write message", "action", message.Action, "error", err)
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) any {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Info("unknown action")
		return newErrorMessage(message.Action, fmt.Errorf("unknown action %q", message.Action), "unknown_action")
	}

	payload, err := handler(ctx, message)
	if err != nil {
		code := errorCode(err)
		if code == "internal" {
			log.Error("error processing message", "error", err)
			return newErrorMessage(message.Action, errors.New(http.StatusText(http.StatusInternalServerError)), code)
		}

		log.Info("message rejected", "error", err)
		return newErrorMessage(message.Action, err, code)
	}

	return newMessage(message.Action, payload)
}
