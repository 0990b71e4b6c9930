package discord

import (
	"mealbot/internal/ports/input"
	"mealbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	sessions     input.SessionUseCase
	meals        input.MealUseCase
	events       input.EventUseCase
	wizard       input.WizardUseCase
	payments     input.PaymentUseCase
	participants input.ParticipantUseCase
	translator   output.T
}

// NewHandler creates a Handler.
func NewHandler(
	sessions input.SessionUseCase,
	meals input.MealUseCase,
	events input.EventUseCase,
	wizard input.WizardUseCase,
	payments input.PaymentUseCase,
	participants input.ParticipantUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		sessions:     sessions,
		meals:        meals,
		events:       events,
		wizard:       wizard,
		payments:     payments,
		participants: participants,
		translator:   translator,
	}
}

func (h *Handler) translate(locale, key string, data map[string]any) string {
	return h.translator.T(locale, key, data)
}
