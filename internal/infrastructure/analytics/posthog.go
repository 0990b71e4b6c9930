package analytics

import (
	"log"

	"github.com/posthog/posthog-go"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.Analytics = (*PostHog)(nil)

// PostHog records product events. With an empty API key it degrades to
// log lines, so local runs never ship data anywhere.
type PostHog struct {
	client posthog.Client
}

// NewPostHog returns a PostHog sink, or a logging no-op when apiKey is
// empty.
func NewPostHog(apiKey, endpoint string) *PostHog {
	if apiKey == "" {
		return &PostHog{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		log.Printf("⚠️ Analytics disabled: %v", err)
		return &PostHog{}
	}
	return &PostHog{client: client}
}

// Close flushes buffered events.
func (p *PostHog) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

func (p *PostHog) capture(userID, event string, props posthog.Properties) {
	if p.client == nil {
		log.Printf("[analytics] %s user=%s %v", event, userID, props)
		return
	}
	err := p.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      event,
		Properties: props,
	})
	if err != nil {
		log.Printf("⚠️ Analytics capture failed (%s): %v", event, err)
	}
}

func (p *PostHog) identify(userID string) {
	if p.client == nil {
		log.Printf("[analytics] identify user=%s", userID)
		return
	}
	if err := p.client.Enqueue(posthog.Identify{DistinctId: userID}); err != nil {
		log.Printf("⚠️ Analytics identify failed: %v", err)
	}
}

func (p *PostHog) UserSignedUp(userID string) {
	p.identify(userID)
	p.capture(userID, "user_sign_up", posthog.NewProperties().Set("user_id", userID))
}

func (p *PostHog) UserLoggedIn(userID string) {
	p.identify(userID)
	p.capture(userID, "user_log_in", posthog.NewProperties().Set("user_id", userID))
}

func (p *PostHog) MealCreated(userID string, meal *entities.Meal) {
	p.capture(userID, "meal_created", posthog.NewProperties().
		Set("user_id", userID).
		Set("meal_id", meal.ID).
		Set("meal_title", meal.Title).
		Set("has_picture", meal.ImageURL != ""))
}

func (p *PostHog) EventCreated(userID string, event *entities.Event, meal *entities.Meal) {
	p.capture(userID, "event_created", posthog.NewProperties().
		Set("user_id", userID).
		Set("event_id", event.ID).
		Set("host_user_id", userID).
		Set("event_date", event.EventDate).
		Set("event_price", event.Price).
		Set("event_max_participants", event.MaxParticipants).
		Set("has_picture", event.ImageURL != "").
		Set("meal_id", meal.ID))
}

func (p *PostHog) EventJoined(userID string, event *entities.Event, meal *entities.Meal) {
	p.capture(userID, "event_joined", posthog.NewProperties().
		Set("user_id", userID).
		Set("event_id", event.ID).
		Set("host_user_id", event.HostUserID).
		Set("event_price", event.Price).
		Set("meal_id", meal.ID).
		Set("meal_title", meal.Title))
}

func (p *PostHog) OnboardingStarted(userID string) {
	p.capture(userID, "stripe_onboarding_started", posthog.NewProperties().Set("user_id", userID))
}
