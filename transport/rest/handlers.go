package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/dto"
)

// form field names used by the browser client
const (
	formBoard    = "board[]"
	formAIToken  = "AI_TOKEN"
	formDepth    = "DEPTH_NOW"
	formGameOver = "GAME OVER"

	maxBodyBytes = 1 << 16
)

type decisionUseCase interface {
	Decide(ctx context.Context, req usecase.MoveRequest) (*entity.Decision, error)
	GetDecision(ctx context.Context, id string) (*entity.Decision, error)
	DeleteDecision(ctx context.Context, id string) error
}

// handleFormMove - answers the browser client's form-encoded move request.
func (that *Server) handleFormMove(w http.ResponseWriter, r *http.Request) {
	req, err := parseMoveForm(w, r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.decide(w, r, req)
}

func (that *Server) handleJSONMove(w http.ResponseWriter, r *http.Request) {
	var body dto.MoveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&body); err != nil {
		that.writeError(w, r, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err))
		return
	}

	req, err := body.Parse()
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.decide(w, r, req)
}

func (that *Server) decide(w http.ResponseWriter, r *http.Request, req usecase.MoveRequest) {
	decision, err := that.decisions.Decide(r.Context(), req)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, decision)
}

func decisionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", fmt.Errorf("%w: decision id is required", apperror.ErrInvalidRequest)
	}

	return id, nil
}

func (that *Server) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	id, err := decisionID(r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	decision, err := that.decisions.GetDecision(r.Context(), id)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, decision)
}

func (that *Server) handleDeleteDecision(w http.ResponseWriter, r *http.Request) {
	id, err := decisionID(r)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	if err = that.decisions.DeleteDecision(r.Context(), id); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseMoveForm(w http.ResponseWriter, r *http.Request) (usecase.MoveRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return usecase.MoveRequest{}, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	board, err := entity.ParseBoard(r.PostForm[formBoard])
	if err != nil {
		return usecase.MoveRequest{}, err
	}

	aiToken, err := entity.ParsePlayerToken(r.PostForm.Get(formAIToken))
	if err != nil {
		return usecase.MoveRequest{}, err
	}

	depth, err := entity.ParseDepth(r.PostForm.Get(formDepth))
	if err != nil {
		return usecase.MoveRequest{}, err
	}

	gameOver := false
	if raw := strings.TrimSpace(r.PostForm.Get(formGameOver)); raw != "" {
		if gameOver, err = strconv.ParseBool(raw); err != nil {
			return usecase.MoveRequest{}, fmt.Errorf("%w: %q is not a boolean", apperror.ErrInvalidRequest, raw)
		}
	}

	return usecase.MoveRequest{
		Board:    board,
		AIToken:  aiToken,
		Depth:    depth,
		GameOver: gameOver,
	}, nil
}

func statusFor(err error) int {
	switch {
	case apperror.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrDecisionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := that.logger.With("method", "writeError", "path", r.URL.Path)

	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	} else {
		log.Info("request rejected", "status", status, "error", err)
	}

	that.writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
