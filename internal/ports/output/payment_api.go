package output

import (
	"context"

	"mealbot/internal/domain/entities"
)

type PaymentAPI interface {
	Connect(ctx context.Context, sess *entities.Session) (*entities.ConnectLink, error)
	Status(ctx context.Context, sess *entities.Session) (*entities.PaymentAccountStatus, error)
	DashboardLogin(ctx context.Context, sess *entities.Session) (*entities.DashboardLink, error)
	SessionStatus(ctx context.Context, sess *entities.Session, checkoutSessionID string) (*entities.SessionStatus, error)
}
