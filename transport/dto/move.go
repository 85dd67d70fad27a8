package dto

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// MoveRequest is the JSON shape of a move request shared by the transports.
type MoveRequest struct {
	Board    []string `json:"board"`
	AIToken  string   `json:"ai_token"`
	Depth    *int     `json:"depth"`
	GameOver bool     `json:"game_over"`
}

type DecisionRequest struct {
	ID string `json:"id"`
}

type DeletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Parse - converts the raw fields into typed values; depth is required.
func (that *MoveRequest) Parse() (usecase.MoveRequest, error) {
	board, err := entity.ParseBoard(that.Board)
	if err != nil {
		return usecase.MoveRequest{}, err
	}

	aiToken, err := entity.ParsePlayerToken(that.AIToken)
	if err != nil {
		return usecase.MoveRequest{}, err
	}

	if that.Depth == nil {
		return usecase.MoveRequest{}, fmt.Errorf("%w: depth is required", apperror.ErrInvalidDepth)
	}

	if err = entity.ValidateDepth(*that.Depth); err != nil {
		return usecase.MoveRequest{}, err
	}

	return usecase.MoveRequest{
		Board:    board,
		AIToken:  aiToken,
		Depth:    *that.Depth,
		GameOver: that.GameOver,
	}, nil
}
