package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func newDecision(id string) *entity.Decision {
	board := entity.NewBoard()
	board[0] = entity.PlayerX
	board[4] = entity.PlayerX

	considered := entity.NewConsideredBoard(board)
	for _, move := range board.LegalMoves() {
		considered.SetScore(move, 0)
	}
	considered.SetScore(8, 990)

	return &entity.Decision{
		ID:              id,
		Board:           board,
		AIToken:         entity.PlayerX,
		Depth:           0,
		Move:            8,
		Score:           990,
		ConsideredBoard: considered,
		CreatedAt:       time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDecisionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	decisionRepo := NewDecisionRepository(st.Storage, time.Hour)

	// Given: a decision
	decision := newDecision("123")

	// When: Save is called
	err := decisionRepo.Save(ctx, decision)

	// Then: no error should be returned, and the decision is stored with a TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "decision:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestDecisionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, time.Hour)

		// Given: a stored decision
		decision := newDecision("123")
		require.NoError(t, decisionRepo.Save(ctx, decision))

		// When: GetByID is called with the existing ID
		retrieved, err := decisionRepo.GetByID(ctx, decision.ID)

		// Then: the retrieved decision should match the saved one
		require.NoError(t, err)
		assert.Equal(t, decision, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, time.Hour)

		// When: GetByID is called with a non-existent ID
		retrieved, err := decisionRepo.GetByID(ctx, "9999999")

		// Then: an ErrDecisionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByID_Expired", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, time.Minute)

		// Given: a stored decision whose TTL has passed
		require.NoError(t, decisionRepo.Save(ctx, newDecision("123")))
		st.FastForward(2 * time.Minute)

		// When: GetByID is called
		_, err := decisionRepo.GetByID(ctx, "123")

		// Then: the decision is gone
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
	})
}

func TestDecisionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, 0)

		// Given: a stored decision
		require.NoError(t, decisionRepo.Save(ctx, newDecision("123")))

		// When: DeleteByID is called with the existing ID
		err := decisionRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the decision is gone
		require.NoError(t, err)

		_, err = decisionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, 0)

		// When: DeleteByID is called with a non-existent ID
		err := decisionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrDecisionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
	})
}
