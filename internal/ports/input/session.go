package input

import (
	"context"

	"mealbot/internal/domain/entities"
)

type SessionUseCase interface {
	Login(ctx context.Context, discordUserID, email, password string) (*entities.User, error)
	Signup(ctx context.Context, discordUserID string, create entities.UserCreate) (*entities.User, error)
	Logout(ctx context.Context, discordUserID string) error
	// Current returns the stored session; nil session, nil error when
	// the user never logged in.
	Current(ctx context.Context, discordUserID string) (*entities.Session, error)
	// Profile fetches a user by id, falling back to the cached record
	// when the lookup fails for the caller's own id.
	Profile(ctx context.Context, discordUserID, userID string) (*entities.User, error)
	UpdateProfile(ctx context.Context, discordUserID string, update entities.UserUpdate) (*entities.User, error)
	// UpdateProfilePicture replaces the caller's picture with the image
	// behind imageURL.
	UpdateProfilePicture(ctx context.Context, discordUserID, imageURL string) (*entities.User, error)
}
