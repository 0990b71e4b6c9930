package output

import (
	"context"

	"mealbot/internal/domain/entities"
)

// EventCreate is the multipart-or-JSON creation payload shipped to the
// backend. ImageURL, when set, is fetched and re-sent as a multipart
// file part by the adapter.
type EventCreate struct {
	MealID          string
	Title           string
	Description     string
	MaxParticipants int
	Location        string
	EventDate       string
	Price           int
	ImageURL        string
}

type EventAPI interface {
	Create(ctx context.Context, sess *entities.Session, create EventCreate) (*entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Event, error)
	Get(ctx context.Context, eventID string) (*entities.Event, error)
	Mine(ctx context.Context, sess *entities.Session) ([]entities.Event, error)
	Joined(ctx context.Context, sess *entities.Session) ([]entities.Event, error)
	Participants(ctx context.Context, sess *entities.Session, eventID string) ([]entities.Participant, error)
	AcceptParticipation(ctx context.Context, sess *entities.Session, eventID, userID string) error
	Update(ctx context.Context, sess *entities.Session, eventID string, update entities.EventUpdate) (*entities.Event, error)
	Delete(ctx context.Context, sess *entities.Session, eventID string) error
	Refund(ctx context.Context, sess *entities.Session, eventID string) (*entities.RefundResult, error)
	CreateCheckoutSession(ctx context.Context, sess *entities.Session, eventID string) (*entities.CheckoutSession, error)
}
