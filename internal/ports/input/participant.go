package input

import (
	"context"

	"mealbot/internal/domain/entities"
)

type ParticipantUseCase interface {
	Participants(ctx context.Context, discordUserID, eventID string) ([]entities.Participant, error)
	// Accept confirms a participant. While a row's request is
	// outstanding the same row cannot be re-submitted
	// (domain.ErrActionInFlight); other rows stay actionable.
	Accept(ctx context.Context, discordUserID, eventID, participantUserID string) error
}
