package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

type SessionService struct {
	store     output.SessionStore
	users     output.UserAPI
	analytics output.Analytics
}

func NewSessionService(store output.SessionStore, users output.UserAPI, analytics output.Analytics) *SessionService {
	return &SessionService{store: store, users: users, analytics: analytics}
}

func (s *SessionService) Login(ctx context.Context, discordUserID, email, password string) (*entities.User, error) {
	resp, err := s.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess := &entities.Session{
		DiscordUserID: discordUserID,
		Token:         resp.AccessToken,
		User:          &resp.User,
		UpdatedAt:     time.Now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.analytics.UserLoggedIn(resp.User.ID)
	return &resp.User, nil
}

func (s *SessionService) Signup(ctx context.Context, discordUserID string, create entities.UserCreate) (*entities.User, error) {
	user, err := s.users.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	s.analytics.UserSignedUp(user.ID)
	// Log the fresh account in right away so the bot has a token.
	if _, err := s.Login(ctx, discordUserID, create.Email, create.Password); err != nil {
		log.Printf("⚠️ Post-signup login failed for %s: %v", discordUserID, err)
	}
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context, discordUserID string) error {
	return s.store.Clear(ctx, discordUserID)
}

func (s *SessionService) Current(ctx context.Context, discordUserID string) (*entities.Session, error) {
	return s.store.Get(ctx, discordUserID)
}

// Profile fetches a user. When the lookup fails for the caller's own
// id, the cached session record is returned as a secondary source of
// truth.
func (s *SessionService) Profile(ctx context.Context, discordUserID, userID string) (*entities.User, error) {
	sess, err := s.store.Get(ctx, discordUserID)
	if err != nil {
		log.Printf("⚠️ Session lookup failed for %s: %v", discordUserID, err)
	}
	user, err := s.users.Get(ctx, sess, userID)
	if err != nil {
		if sess != nil && sess.User != nil && sess.User.ID == userID {
			log.Printf("⚠️ Profile fetch failed, serving cached user %s: %v", userID, err)
			return sess.User, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *SessionService) UpdateProfile(ctx context.Context, discordUserID string, update entities.UserUpdate) (*entities.User, error) {
	sess, err := s.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Update(ctx, sess, sess.User.ID, update)
	if err != nil {
		return nil, err
	}
	sess.User = user
	sess.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, sess); err != nil {
		log.Printf("⚠️ Cached user refresh failed for %s: %v", discordUserID, err)
	}
	return user, nil
}

func (s *SessionService) UpdateProfilePicture(ctx context.Context, discordUserID, imageURL string) (*entities.User, error) {
	sess, err := s.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.UploadProfilePicture(ctx, sess, sess.User.ID, imageURL)
	if err != nil {
		return nil, err
	}
	sess.User = user
	sess.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, sess); err != nil {
		log.Printf("⚠️ Cached user refresh failed for %s: %v", discordUserID, err)
	}
	return user, nil
}

func (s *SessionService) requireSession(ctx context.Context, discordUserID string) (*entities.Session, error) {
	sess, err := s.store.Get(ctx, discordUserID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !sess.LoggedIn() || sess.User == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return sess, nil
}
