package output

import (
	"context"

	"mealbot/internal/domain/entities"
)

// SessionStore is the single access point for tokens and cached users.
// Every reader fetches fresh from the store; nothing keeps a parallel
// mutable copy.
type SessionStore interface {
	// Get returns the stored session, or nil when the user has none.
	Get(ctx context.Context, discordUserID string) (*entities.Session, error)
	Save(ctx context.Context, sess *entities.Session) error
	// ClearToken evicts the token but keeps the cached user record.
	ClearToken(ctx context.Context, discordUserID string) error
	// Clear removes the session entirely.
	Clear(ctx context.Context, discordUserID string) error
}

// PendingJoinStore holds the one-shot markers written before a hosted
// checkout hand-off.
type PendingJoinStore interface {
	Put(ctx context.Context, marker *entities.PendingJoin) error
	// Consume returns and deletes the marker for the correlation id.
	// A missing marker returns (nil, nil): consumption is one-shot.
	Consume(ctx context.Context, correlationID string) (*entities.PendingJoin, error)
}
