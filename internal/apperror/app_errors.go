package apperror

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidBoard   = errors.New("invalid board")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidDepth   = errors.New("invalid depth")
	ErrInvalidPlayers = errors.New("invalid players")
	ErrNoActivePlayer = errors.New("no player holds X")

	ErrGameFinished     = errors.New("game is already finished")
	ErrNoLegalMoves     = errors.New("no legal moves on an unfinished board")
	ErrDecisionNotFound = errors.New("decision not found")

	ErrInvalidSearchConfig = errors.New("invalid search configuration")
)

// IsValidation reports whether err was caused by malformed caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidBoard) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidDepth) ||
		errors.Is(err, ErrInvalidPlayers) ||
		errors.Is(err, ErrNoActivePlayer)
}
