package input

import (
	"context"

	"mealbot/internal/domain/entities"
)

// JoinHandoff is everything the adapter needs to send a user to the
// hosted checkout page.
type JoinHandoff struct {
	Event         *entities.Event
	CheckoutURL   string
	CorrelationID string
}

// Reconciliation is the outcome of resolving a checkout redirect.
type Reconciliation struct {
	DiscordUserID string
	Completed     bool
	// Listings is the refreshed set after a completed payment; nil
	// otherwise.
	Listings *Listings
	// JoinedEvent is the attributed event when the one-shot marker
	// lookup hit; attribution is best effort and may be nil.
	JoinedEvent *entities.Event
}

type PaymentUseCase interface {
	// Status never fails: any fetch error resolves to the conservative
	// not-connected status.
	Status(ctx context.Context, discordUserID string) *entities.PaymentAccountStatus
	// StartOnboarding returns the hosted onboarding URL; control leaves
	// the application once the user follows it.
	StartOnboarding(ctx context.Context, discordUserID string) (string, error)
	DashboardLogin(ctx context.Context, discordUserID string) (string, error)
	// BeginJoin creates a checkout session for the event and writes the
	// one-shot pending-join marker before the hand-off.
	BeginJoin(ctx context.Context, discordUserID, eventID string) (*JoinHandoff, error)
	// Reconcile resolves a checkout redirect. The pending-join marker
	// is consumed and never survives the call, whatever the outcome.
	Reconcile(ctx context.Context, correlationID, checkoutSessionID string) (*Reconciliation, error)
}
