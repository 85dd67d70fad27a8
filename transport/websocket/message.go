package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	actionMove           = "ai:move"
	actionGetDecision    = "decision:get"
	actionDeleteDecision = "decision:delete"
	actionError          = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
	Code   string `json:"code"`
}

// errorCode classifies err for clients the same way the REST status does.
func errorCode(err error) string {
	switch {
	case apperror.IsValidation(err):
		return "invalid_request"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	case errors.Is(err, apperror.ErrDecisionNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
