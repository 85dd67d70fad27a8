package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw  string
		want Token
	}{
		{raw: "X", want: PlayerX},
		{raw: "o", want: PlayerO},
		{raw: " X ", want: PlayerX},
		{raw: " ", want: Empty},
		{raw: "", want: Empty},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			token, err := ParseToken(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}

	t.Run("Unknown token", func(t *testing.T) {
		_, err := ParseToken("Z")

		require.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestParsePlayerToken(t *testing.T) {
	t.Run("Accepts a player token", func(t *testing.T) {
		token, err := ParsePlayerToken("O")

		require.NoError(t, err)
		assert.Equal(t, PlayerO, token)
	})

	t.Run("Rejects the empty token", func(t *testing.T) {
		_, err := ParsePlayerToken(" ")

		require.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses nine cells", func(t *testing.T) {
		// Given: form cells with spaces for empty tiles
		cells := []string{"X", " ", " ", " ", "O", " ", " ", " ", ""}

		// When: parsing the board
		board, err := ParseBoard(cells)

		// Then: tokens land on their indices
		require.NoError(t, err)
		assert.Equal(t, boardOf("X   O    "), board)
	})

	t.Run("Rejects the wrong number of cells", func(t *testing.T) {
		_, err := ParseBoard([]string{"X", "O"})

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects an unknown cell", func(t *testing.T) {
		cells := []string{"X", " ", " ", " ", "Q", " ", " ", " ", " "}

		_, err := ParseBoard(cells)

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestParseDepth(t *testing.T) {
	t.Run("Parses a non-negative integer", func(t *testing.T) {
		depth, err := ParseDepth("20")

		require.NoError(t, err)
		assert.Equal(t, 20, depth)
	})

	t.Run("Leaves the upper bound to the searcher", func(t *testing.T) {
		depth, err := ParseDepth("1000")

		require.NoError(t, err)
		assert.Equal(t, 1000, depth)
	})

	for _, raw := range []string{"", "abc", "-10", "1.5"} {
		t.Run("Rejects "+raw, func(t *testing.T) {
			_, err := ParseDepth(raw)

			require.ErrorIs(t, err, apperror.ErrInvalidDepth)
		})
	}
}

func TestValidateDepthWithin(t *testing.T) {
	assert.NoError(t, ValidateDepthWithin(0, MaxDepth))
	assert.NoError(t, ValidateDepthWithin(MaxDepth, MaxDepth))

	err := ValidateDepthWithin(MaxDepth+1, MaxDepth)
	require.ErrorIs(t, err, apperror.ErrInvalidDepth)
	assert.Contains(t, err.Error(), "full board")

	assert.ErrorIs(t, ValidateDepthWithin(-1, MaxDepth), apperror.ErrInvalidDepth)
}

func TestConsideredBoard_JSON(t *testing.T) {
	// Given: a considered board with two scored cells
	considered := NewConsideredBoard(boardOf("XOXOXO   "))
	considered.SetScore(6, 990)
	considered.SetScore(7, -20)

	// When: encoding it
	raw, err := json.Marshal(considered)
	require.NoError(t, err)

	// Then: scores are numbers and occupied cells keep their tokens
	assert.JSONEq(t, `["X","O","X","O","X","O",990,-20," "]`, string(raw))

	// When: decoding it back
	var decoded ConsideredBoard
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Then: the scored cells are restored
	assert.Equal(t, considered[0], decoded[0])
	assert.True(t, decoded[6].Scored)
	assert.Equal(t, 990, decoded[6].Score)
	assert.Equal(t, -20, decoded[7].Score)
	assert.False(t, decoded[8].Scored)
}
