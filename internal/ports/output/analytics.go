package output

import "mealbot/internal/domain/entities"

// Analytics records product events. Implementations are fire-and-forget
// and must never block or fail a user flow.
type Analytics interface {
	UserSignedUp(userID string)
	UserLoggedIn(userID string)
	MealCreated(userID string, meal *entities.Meal)
	EventCreated(userID string, event *entities.Event, meal *entities.Meal)
	EventJoined(userID string, event *entities.Event, meal *entities.Meal)
	OnboardingStarted(userID string)
}
