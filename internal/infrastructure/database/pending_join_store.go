package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.PendingJoinStore = (*PendingJoinStore)(nil)

// PendingJoinStore persists the one-shot markers written before a
// hosted checkout hand-off. A user keeps at most one marker; a second
// join attempt overwrites the first.
type PendingJoinStore struct {
	pool *pgxpool.Pool
}

func NewPendingJoinStore(pool *pgxpool.Pool) *PendingJoinStore {
	return &PendingJoinStore{pool: pool}
}

func (s *PendingJoinStore) Put(ctx context.Context, marker *entities.PendingJoin) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO pending_joins (correlation_id, discord_user_id, event_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (discord_user_id)
		 DO UPDATE SET correlation_id = $1, event_id = $3, created_at = $4`,
		marker.CorrelationID, marker.DiscordUserID, marker.EventID, marker.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save pending join: %w", err)
	}
	return nil
}

// Consume returns and deletes the marker in one statement, so a second
// read always misses.
func (s *PendingJoinStore) Consume(ctx context.Context, correlationID string) (*entities.PendingJoin, error) {
	marker := &entities.PendingJoin{CorrelationID: correlationID}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM pending_joins WHERE correlation_id = $1
		 RETURNING discord_user_id, event_id, created_at`,
		correlationID,
	).Scan(&marker.DiscordUserID, &marker.EventID, &marker.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consume pending join: %w", err)
	}
	return marker, nil
}
