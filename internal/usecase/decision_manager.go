package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// MoveRequest is a move request after the transport has parsed its fields.
type MoveRequest struct {
	Board    entity.Board
	AIToken  entity.Token
	Depth    int
	GameOver bool
}

type decisionRepo interface {
	Save(ctx context.Context, decision *entity.Decision) error
	GetByID(ctx context.Context, id string) (*entity.Decision, error)
	DeleteByID(ctx context.Context, id string) error
}

type DecisionManager struct {
	logger       *slog.Logger
	decisionRepo decisionRepo
	searcher     *tictactoe.Minimax

	now   func() time.Time
	newID func() string
}

func NewDecisionManager(logger *slog.Logger, decisionRepo decisionRepo, searcher *tictactoe.Minimax) *DecisionManager {
	return &DecisionManager{
		logger:       logger.With("component", "decisionManager"),
		decisionRepo: decisionRepo,
		searcher:     searcher,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Decide - picks the computer's move for the position in req and stores the
// decision so it can be looked up later.
func (that *DecisionManager) Decide(ctx context.Context, req MoveRequest) (*entity.Decision, error) {
	log := that.logger.With("method", "Decide")

	if req.GameOver || req.Board.IsFinished() {
		return nil, fmt.Errorf("%w: winner %q", apperror.ErrGameFinished, req.Board.Winner())
	}

	if !req.AIToken.IsPlayer() {
		return nil, fmt.Errorf("%w: ai token %q", apperror.ErrInvalidToken, req.AIToken)
	}

	// alternating play keeps the counts at most one apart
	if x, o := req.Board.Count(entity.PlayerX), req.Board.Count(entity.PlayerO); x-o > 1 || o-x > 1 {
		log.Warn("unbalanced board", "x", x, "o", o)
	}

	computer := tictactoe.NewComputerPlayer(req.AIToken, that.searcher)
	human := tictactoe.NewHumanPlayer(req.AIToken.Opponent())

	game, err := tictactoe.NewGame(computer, human, req.Board, req.Depth)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}

	started := that.now()

	result, err := computer.Move(game)
	if err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	decision := &entity.Decision{
		ID:              that.newID(),
		Board:           req.Board,
		AIToken:         req.AIToken,
		Depth:           req.Depth,
		Move:            result.Move,
		Score:           result.Score,
		ConsideredBoard: result.Considered,
		CreatedAt:       that.now().UTC(),
	}

	if err = that.decisionRepo.Save(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to save decision: %w", err)
	}

	log.Info("move chosen",
		"decisionID", decision.ID,
		"aiToken", decision.AIToken,
		"move", decision.Move,
		"score", decision.Score,
		"duration", that.now().Sub(started),
	)

	return decision, nil
}

func (that *DecisionManager) GetDecision(ctx context.Context, id string) (*entity.Decision, error) {
	decision, err := that.decisionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	return decision, nil
}

func (that *DecisionManager) DeleteDecision(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteDecision")

	if err := that.decisionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete decision: %w", err)
	}

	log.Info("decision deleted", "decisionID", id)

	return nil
}
