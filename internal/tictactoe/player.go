package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Player interface {
	Token() entity.Token
}

// HumanPlayer only fills a seat; its moves arrive through the board.
type HumanPlayer struct {
	token entity.Token
}

func NewHumanPlayer(token entity.Token) *HumanPlayer {
	return &HumanPlayer{token: token}
}

func (that *HumanPlayer) Token() entity.Token {
	return that.token
}

// ComputerPlayer chooses its moves with a minimax search.
type ComputerPlayer struct {
	token    entity.Token
	searcher *Minimax
}

func NewComputerPlayer(token entity.Token, searcher *Minimax) *ComputerPlayer {
	return &ComputerPlayer{
		token:    token,
		searcher: searcher,
	}
}

func (that *ComputerPlayer) Token() entity.Token {
	return that.token
}

// Move - searches the position and returns the chosen cell with its score and
// the considered board.
func (that *ComputerPlayer) Move(game *Game) (SearchResult, error) {
	if game.IsOver() {
		return SearchResult{Move: NoMove}, ErrGameOver
	}

	return that.searcher.Search(that, game)
}
