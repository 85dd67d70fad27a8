package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/dto"
)

func (that *Server) handleMove(ctx context.Context, message *Message) (any, error) {
	var body dto.MoveRequest
	if err := json.Unmarshal(message.Payload, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	req, err := body.Parse()
	if err != nil {
		return nil, err
	}

	return that.decisions.Decide(ctx, req)
}

func (that *Server) handleGetDecision(ctx context.Context, message *Message) (any, error) {
	id, err := decisionID(message)
	if err != nil {
		return nil, err
	}

	return that.decisions.GetDecision(ctx, id)
}

func (that *Server) handleDeleteDecision(ctx context.Context, message *Message) (any, error) {
	id, err := decisionID(message)
	if err != nil {
		return nil, err
	}

	if err = that.decisions.DeleteDecision(ctx, id); err != nil {
		return nil, err
	}

	return dto.DeletedResponse{ID: id, Deleted: true}, nil
}

func decisionID(message *Message) (string, error) {
	var body dto.DecisionRequest
	if err := json.Unmarshal(message.Payload, &body); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	id := strings.TrimSpace(body.ID)
	if id == "" {
		return "", fmt.Errorf("%w: decision id is required", apperror.ErrInvalidRequest)
	}

	return id, nil
}

func newMessage(action string, payload any) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		return newErrorMessage(action, fmt.Errorf("failed to marshal payload: %w", err), "internal")
	}

	return Message{
		Action:  action,
		Payload: raw,
	}
}

func newErrorMessage(action string, err error, code string) Message {
	raw, _ := json.Marshal(ErrorPayload{
		Action: action,
		Error:  err.Error(),
		Code:   code,
	})

	return Message{
		Action:  actionError,
		Payload: raw,
	}
}
