package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// ParseToken accepts "X", "O" (any case) and blank strings for an empty cell.
func ParseToken(raw string) (Token, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Empty, nil
	}

	switch token := Token(strings.ToUpper(trimmed)); token {
	case PlayerX, PlayerO:
		return token, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidToken, raw)
	}
}

// ParsePlayerToken is ParseToken without the empty cell.
func ParsePlayerToken(raw string) (Token, error) {
	token, err := ParseToken(raw)
	if err != nil {
		return "", err
	}

	if token == Empty {
		return "", fmt.Errorf("%w: player token is empty", apperror.ErrInvalidToken)
	}

	return token, nil
}

func ParseBoard(cells []string) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	for i, raw := range cells {
		token, err := ParseToken(raw)
		if err != nil {
			return board, fmt.Errorf("%w: cell %d: %w", apperror.ErrInvalidBoard, i, err)
		}

		board[i] = token
	}

	return board, nil
}

// ParseDepth accepts a non-negative base-10 integer. The upper bound depends
// on the searcher's ply weight and is checked there.
func ParseDepth(raw string) (int, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apperror.ErrInvalidDepth, raw)
	}

	if err = ValidateDepth(depth); err != nil {
		return 0, err
	}

	return depth, nil
}

func ValidateDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d is negative", apperror.ErrInvalidDepth, depth)
	}

	return nil
}

// ValidateDepthWithin also rejects depths above maxDepth, the depth of a full
// board played from empty.
func ValidateDepthWithin(depth, maxDepth int) error {
	if depth < 0 || depth > maxDepth {
		return fmt.Errorf("%w: %d is outside [0, %d], the depth of a full board played from empty",
			apperror.ErrInvalidDepth, depth, maxDepth)
	}

	return nil
}
