package input

import (
	"context"

	"mealbot/internal/domain/entities"
)

// Listings holds the three event listings. Mine and Joined degrade to
// empty on fetch failures (commonly an unauthenticated caller); a
// failure of the public listing is reported in AllErr, never raised.
type Listings struct {
	All    []entities.Event
	Mine   []entities.Event
	Joined []entities.Event
	AllErr error
}

// Joined reports whether eventID appears in the joined listing.
func (l *Listings) HasJoined(eventID string) bool {
	for _, e := range l.Joined {
		if e.ID == eventID {
			return true
		}
	}
	return false
}

type EventUseCase interface {
	// Listings refreshes all three listings concurrently and returns
	// once all of them settled.
	Listings(ctx context.Context, discordUserID string) (*Listings, error)
	GetEvent(ctx context.Context, eventID string) (*entities.Event, error)
	UpdateEvent(ctx context.Context, discordUserID, eventID string, update entities.EventUpdate) (*entities.Event, error)
	// DeleteEvent is rejected by the backend when the event has
	// participants; the rejection message is surfaced verbatim.
	DeleteEvent(ctx context.Context, discordUserID, eventID string) error
	Refund(ctx context.Context, discordUserID, eventID string) (*entities.RefundResult, error)
}
