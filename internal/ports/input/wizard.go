package input

import (
	"context"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
)

// WizardView is a snapshot of a user's event-creation flow, enough for
// the adapter to render the current screen.
type WizardView struct {
	Step          domain.WizardStep
	Progress      float64
	CanGoBack     bool
	CanGoNext     bool
	StepReady     bool
	Draft         *entities.EventDraft
	AccountStatus *entities.PaymentAccountStatus
}

// DraftDetails carries the free-text fields of the details screen.
type DraftDetails struct {
	Title           string
	Description     string
	MaxParticipants string
	EventDate       string
	Location        string
}

type WizardUseCase interface {
	// Start opens a fresh wizard for the user, discarding any previous
	// one, and runs the initial payment-account check.
	Start(ctx context.Context, discordUserID string) (*WizardView, error)
	Abandon(discordUserID string)
	View(discordUserID string) (*WizardView, error)
	// Next advances only when the active step's guard passes.
	Next(discordUserID string) (*WizardView, error)
	Back(discordUserID string) (*WizardView, error)
	RecheckPayments(ctx context.Context, discordUserID string) (*WizardView, error)
	MealChoices(ctx context.Context, discordUserID string) ([]entities.Meal, error)
	SelectMeal(ctx context.Context, discordUserID, mealID string) (*WizardView, error)
	SetDetails(discordUserID string, details DraftDetails) (*WizardView, error)
	PriceInput(discordUserID, input string) (*WizardView, error)
	PriceBackspace(discordUserID string) (*WizardView, error)
	Submit(ctx context.Context, discordUserID string) (*entities.Event, error)
}
