package output

import (
	"context"

	"mealbot/internal/domain/entities"
)

type UserAPI interface {
	Login(ctx context.Context, email, password string) (*entities.LoginResponse, error)
	Create(ctx context.Context, create entities.UserCreate) (*entities.User, error)
	Get(ctx context.Context, sess *entities.Session, userID string) (*entities.User, error)
	Update(ctx context.Context, sess *entities.Session, userID string, update entities.UserUpdate) (*entities.User, error)
	// UploadProfilePicture fetches the image behind imageURL and ships
	// it as a multipart upload.
	UploadProfilePicture(ctx context.Context, sess *entities.Session, userID, imageURL string) (*entities.User, error)
}
