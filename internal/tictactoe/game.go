package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrGameOver = fmt.Errorf("%w: nothing left to play", apperror.ErrGameFinished)

// Game is a single static position. The player holding X moves first from it,
// so callers must hand over the board as it stands right before that move.
type Game struct {
	PlayerOne Player
	PlayerTwo Player
	Board     entity.Board
	Depth     int

	active Player
}

func NewGame(playerOne, playerTwo Player, board entity.Board, depth int) (*Game, error) {
	if err := validatePlayers(playerOne, playerTwo); err != nil {
		return nil, err
	}

	if err := entity.ValidateDepth(depth); err != nil {
		return nil, err
	}

	game := &Game{
		PlayerOne: playerOne,
		PlayerTwo: playerTwo,
		Board:     board,
		Depth:     depth,
	}

	switch entity.PlayerX {
	case playerOne.Token():
		game.active = playerOne
	case playerTwo.Token():
		game.active = playerTwo
	default:
		return nil, fmt.Errorf("%w: players hold %q and %q", apperror.ErrNoActivePlayer, playerOne.Token(), playerTwo.Token())
	}

	if game.opponent(game.active).Token() != entity.PlayerO {
		return nil, fmt.Errorf("%w: opponent of X holds %q", apperror.ErrInvalidPlayers, game.opponent(game.active).Token())
	}

	return game, nil
}

func validatePlayers(playerOne, playerTwo Player) error {
	if playerOne == nil || playerTwo == nil {
		return fmt.Errorf("%w: both players are required", apperror.ErrInvalidPlayers)
	}

	if playerOne == playerTwo {
		return fmt.Errorf("%w: a player cannot take both seats", apperror.ErrInvalidPlayers)
	}

	return nil
}

func (that *Game) ActivePlayer() Player {
	return that.active
}

func (that *Game) opponent(player Player) Player {
	if player == that.PlayerOne {
		return that.PlayerTwo
	}

	return that.PlayerOne
}

// HasWon reports whether player completed a line.
func (that *Game) HasWon(player Player) bool {
	return that.Board.HasWon(player.Token())
}

func (that *Game) IsOver() bool {
	return that.HasWon(that.PlayerOne) || that.HasWon(that.PlayerTwo) || that.Board.IsFull()
}

// Next builds the position after the active player takes cell, one ply deeper
// and with the other player to move.
func (that *Game) Next(cell int, plyWeight int) *Game {
	return &Game{
		PlayerOne: that.PlayerOne,
		PlayerTwo: that.PlayerTwo,
		Board:     that.Board.Place(cell, that.active.Token()),
		Depth:     that.Depth + plyWeight,
		active:    that.opponent(that.active),
	}
}
