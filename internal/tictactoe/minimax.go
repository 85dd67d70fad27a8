package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	// NoMove is reported for positions that are already decided.
	NoMove = -1

	DefaultWinScore = 1000
)

// SearchResult is the outcome of searching one position.
type SearchResult struct {
	Move       int
	Score      int
	Considered entity.ConsideredBoard
}

type Option func(*Minimax)

func WithWinScore(score int) Option {
	return func(m *Minimax) {
		m.winScore = score
	}
}

func WithPlyWeight(weight int) Option {
	return func(m *Minimax) {
		m.plyWeight = weight
	}
}

// Minimax is an exhaustive game tree search without pruning. It holds no state
// between searches and is safe to share.
type Minimax struct {
	winScore  int
	plyWeight int
}

// NewMinimax rejects constants under which a win could score at or below a
// draw, or a slower win could outscore a faster one.
func NewMinimax(options ...Option) (*Minimax, error) {
	m := &Minimax{
		winScore:  DefaultWinScore,
		plyWeight: entity.PlyWeight,
	}

	for _, option := range options {
		option(m)
	}

	if m.plyWeight <= 0 {
		return nil, fmt.Errorf("%w: ply weight %d must be positive", apperror.ErrInvalidSearchConfig, m.plyWeight)
	}

	// the deepest terminal is a full board played from MaxDepth
	if deepest := m.MaxDepth() + entity.BoardSize*m.plyWeight; m.winScore <= deepest {
		return nil, fmt.Errorf("%w: win score %d must exceed the deepest terminal depth %d",
			apperror.ErrInvalidSearchConfig, m.winScore, deepest)
	}

	return m, nil
}

// MaxDepth is the largest starting depth Search accepts.
func (that *Minimax) MaxDepth() int {
	return entity.BoardSize * that.plyWeight
}

// Score rates a finished game from ai's point of view. Wins lose value and
// losses gain value the deeper they happen; a draw is 0.
func (that *Minimax) Score(ai Player, game *Game) int {
	switch {
	case game.HasWon(ai):
		return that.winScore - game.Depth
	case game.HasWon(game.opponent(ai)):
		return game.Depth - that.winScore
	default:
		return 0
	}
}

// Search - finds the best move for the active player of game, maximising for
// ai and minimising for its opponent. Equal scores keep the lowest cell.
func (that *Minimax) Search(ai Player, game *Game) (SearchResult, error) {
	if ai != game.PlayerOne && ai != game.PlayerTwo {
		return SearchResult{Move: NoMove}, fmt.Errorf("%w: searching player is not seated", apperror.ErrInvalidPlayers)
	}

	if err := entity.ValidateDepthWithin(game.Depth, that.MaxDepth()); err != nil {
		return SearchResult{Move: NoMove}, err
	}

	return that.search(ai, game, true)
}

// search builds the considered board only when explain is set; inner levels
// throw theirs away.
func (that *Minimax) search(ai Player, game *Game, explain bool) (SearchResult, error) {
	if game.IsOver() {
		return SearchResult{Move: NoMove, Score: that.Score(ai, game)}, nil
	}

	moves := game.Board.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Move: NoMove}, fmt.Errorf("%w: board %v", apperror.ErrNoLegalMoves, game.Board)
	}

	maximizing := game.ActivePlayer() == ai
	best := SearchResult{Move: NoMove}
	if explain {
		best.Considered = entity.NewConsideredBoard(game.Board)
	}

	for _, move := range moves {
		next, err := that.search(ai, game.Next(move, that.plyWeight), false)
		if err != nil {
			return SearchResult{Move: NoMove}, err
		}

		if explain {
			best.Considered.SetScore(move, next.Score)
		}

		if best.Move == NoMove ||
			(maximizing && next.Score > best.Score) ||
			(!maximizing && next.Score < best.Score) {
			best.Move = move
			best.Score = next.Score
		}
	}

	return best, nil
}
