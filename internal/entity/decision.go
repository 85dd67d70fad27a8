package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ConsideredCell is either an occupied token or the score the search gave to
// moving there.
type ConsideredCell struct {
	Token  Token
	Score  int
	Scored bool
}

func (that ConsideredCell) MarshalJSON() ([]byte, error) {
	if that.Scored {
		return json.Marshal(that.Score)
	}

	return json.Marshal(string(that.Token))
}

func (that *ConsideredCell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to unmarshal considered cell token: %w", err)
		}

		*that = ConsideredCell{Token: Token(raw)}
		return nil
	}

	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("failed to unmarshal considered cell score: %w", err)
	}

	*that = ConsideredCell{Token: Empty, Score: score, Scored: true}
	return nil
}

// ConsideredBoard is nil for a finished position.
type ConsideredBoard []ConsideredCell

// NewConsideredBoard copies the tokens of board without any scores.
func NewConsideredBoard(board Board) ConsideredBoard {
	considered := make(ConsideredBoard, len(board))
	for i, token := range board {
		considered[i] = ConsideredCell{Token: token}
	}

	return considered
}

func (that ConsideredBoard) SetScore(index, score int) {
	that[index].Score = score
	that[index].Scored = true
}

// Decision is one answered move request.
type Decision struct {
	ID              string          `json:"id"`
	Board           Board           `json:"board"`
	AIToken         Token           `json:"ai_token"`
	Depth           int             `json:"depth"`
	Move            int             `json:"move"`
	Score           int             `json:"score"`
	ConsideredBoard ConsideredBoard `json:"considered_board"`
	CreatedAt       time.Time       `json:"created_at"`
}
