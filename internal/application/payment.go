package application

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	"mealbot/internal/ports/output"
)

type PaymentService struct {
	payments  output.PaymentAPI
	events    output.EventAPI
	meals     output.MealAPI
	pending   output.PendingJoinStore
	sessions  *SessionService
	listings  *EventService
	analytics output.Analytics

	// checkoutURL is the hosted checkout page; it receives the client
	// secret and the correlation id that comes back on the redirect.
	checkoutURL string
}

func NewPaymentService(
	payments output.PaymentAPI,
	events output.EventAPI,
	meals output.MealAPI,
	pending output.PendingJoinStore,
	sessions *SessionService,
	listings *EventService,
	analytics output.Analytics,
	checkoutURL string,
) *PaymentService {
	return &PaymentService{
		payments:    payments,
		events:      events,
		meals:       meals,
		pending:     pending,
		sessions:    sessions,
		listings:    listings,
		analytics:   analytics,
		checkoutURL: checkoutURL,
	}
}

// Status fetches the connected-account status. It always resolves: any
// failure is logged and collapses to the conservative zero status
// (not connected, no charges, onboarding still needed) rather than
// leaving stale or partial data behind.
func (s *PaymentService) Status(ctx context.Context, discordUserID string) *entities.PaymentAccountStatus {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return &entities.PaymentAccountStatus{}
	}
	status, err := s.payments.Status(ctx, sess)
	if err != nil {
		log.Printf("⚠️ Payment status fetch failed for %s: %v", discordUserID, err)
		return &entities.PaymentAccountStatus{}
	}
	return status
}

// StartOnboarding requests a hosted onboarding URL. Following it is a
// one-way hand-off; the user comes back through the callback listener.
func (s *PaymentService) StartOnboarding(ctx context.Context, discordUserID string) (string, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return "", err
	}
	link, err := s.payments.Connect(ctx, sess)
	if err != nil {
		return "", err
	}
	s.analytics.OnboardingStarted(sess.User.ID)
	return link.OnboardingURL, nil
}

func (s *PaymentService) DashboardLogin(ctx context.Context, discordUserID string) (string, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return "", err
	}
	link, err := s.payments.DashboardLogin(ctx, sess)
	if err != nil {
		return "", err
	}
	return link.AccountURL, nil
}

// BeginJoin creates a checkout session for the event and writes the
// one-shot pending-join marker before handing the user to the hosted
// page.
func (s *PaymentService) BeginJoin(ctx context.Context, discordUserID, eventID string) (*input.JoinHandoff, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	checkout, err := s.events.CreateCheckoutSession(ctx, sess, eventID)
	if err != nil {
		return nil, err
	}
	marker := &entities.PendingJoin{
		CorrelationID: uuid.NewString(),
		DiscordUserID: discordUserID,
		EventID:       eventID,
		CreatedAt:     time.Now(),
	}
	if err := s.pending.Put(ctx, marker); err != nil {
		return nil, fmt.Errorf("save pending join: %w", err)
	}
	q := url.Values{}
	q.Set("cs", checkout.ClientSecret)
	q.Set("ref", marker.CorrelationID)
	return &input.JoinHandoff{
		Event:         event,
		CheckoutURL:   s.checkoutURL + "?" + q.Encode(),
		CorrelationID: marker.CorrelationID,
	}, nil
}
