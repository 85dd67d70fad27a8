package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const decisionKeyPrefix = "decision:"

type DecisionRepository interface {
	Save(ctx context.Context, decision *entity.Decision) error
	GetByID(ctx context.Context, id string) (*entity.Decision, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbDecision struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDecisionRepository - stores decisions as JSON; a zero ttl keeps them forever.
func NewDecisionRepository(client *redis.Client, ttl time.Duration) DecisionRepository {
	return &dbDecision{
		client: client,
		ttl:    ttl,
	}
}

func decisionKey(id string) string {
	return decisionKeyPrefix + id
}

func (that *dbDecision) Save(ctx context.Context, decision *entity.Decision) error {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("could not marshal decision: %w", err)
	}

	if err = that.client.Set(ctx, decisionKey(decision.ID), decisionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set decision: %w", err)
	}

	return nil
}

func (that *dbDecision) GetByID(ctx context.Context, id string) (*entity.Decision, error) {
	response, err := that.client.Get(ctx, decisionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrDecisionNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get decision by id: %w", err)
	}

	var decision entity.Decision
	if err = json.Unmarshal(response, &decision); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision: %w", err)
	}

	return &decision, nil
}

func (that *dbDecision) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, decisionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete decision by id: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: id %s", apperror.ErrDecisionNotFound, id)
	}

	return nil
}
