package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore persists per-Discord-user backend sessions: the bearer
// token and the cached user record, serialized as JSONB.
type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) Get(ctx context.Context, discordUserID string) (*entities.Session, error) {
	sess := &entities.Session{DiscordUserID: discordUserID}
	var userJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT token, user_record, updated_at FROM sessions WHERE discord_user_id = $1`,
		discordUserID,
	).Scan(&sess.Token, &userJSON, &sess.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(userJSON) > 0 {
		var user entities.User
		if err := json.Unmarshal(userJSON, &user); err != nil {
			return nil, fmt.Errorf("decode cached user: %w", err)
		}
		sess.User = &user
	}
	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *entities.Session) error {
	var userJSON []byte
	if sess.User != nil {
		var err error
		userJSON, err = json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("encode cached user: %w", err)
		}
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (discord_user_id, token, user_record, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (discord_user_id)
		 DO UPDATE SET token = $2, user_record = $3, updated_at = $4`,
		sess.DiscordUserID, sess.Token, userJSON, sess.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearToken evicts the token but keeps the cached user record as a
// fallback identity source.
func (s *SessionStore) ClearToken(ctx context.Context, discordUserID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE sessions SET token = '', updated_at = now() WHERE discord_user_id = $1`,
		discordUserID,
	)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, discordUserID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE discord_user_id = $1`,
		discordUserID,
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
