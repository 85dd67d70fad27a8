package entity

const (
	PlayerX Token = "X"
	PlayerO Token = "O"
	Empty   Token = " "

	BoardSize = 9

	// PlyWeight is the default growth of the depth counter per move.
	PlyWeight = 10
	// MaxDepth is the depth of a full board played from empty at PlyWeight.
	MaxDepth = BoardSize * PlyWeight
)

// WinLines holds the three rows, three columns and two diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Token string

func (that Token) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player token, Empty for Empty.
func (that Token) Opponent() Token {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board is a row-major 3x3 grid.
type Board [BoardSize]Token

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = Empty
	}

	return board
}

func (that Board) HasWon(token Token) bool {
	if !token.IsPlayer() {
		return false
	}

	for _, line := range WinLines {
		if that[line[0]] == token && that[line[1]] == token && that[line[2]] == token {
			return true
		}
	}

	return false
}

// Winner returns the token that completed a line, or Empty.
func (that Board) Winner() Token {
	switch {
	case that.HasWon(PlayerX):
		return PlayerX
	case that.HasWon(PlayerO):
		return PlayerO
	default:
		return Empty
	}
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// IsFinished is true when either player has won or the board is full.
func (that Board) IsFinished() bool {
	return that.Winner() != Empty || that.IsFull()
}

func (that Board) Count(token Token) int {
	count := 0
	for _, cell := range that {
		if cell == token {
			count++
		}
	}

	return count
}

// LegalMoves lists the empty cells in ascending index order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

// Place returns a copy of the board with token at index.
func (that Board) Place(index int, token Token) Board {
	that[index] = token
	return that
}
