package application

import (
	"context"
	"sync"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

type ParticipantService struct {
	events   output.EventAPI
	sessions *SessionService

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewParticipantService(events output.EventAPI, sessions *SessionService) *ParticipantService {
	return &ParticipantService{
		events:   events,
		sessions: sessions,
		inFlight: make(map[string]struct{}),
	}
}

func (s *ParticipantService) Participants(ctx context.Context, discordUserID, eventID string) ([]entities.Participant, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.events.Participants(ctx, sess, eventID)
}

// Accept confirms a participant. A row stays locked while its request
// is outstanding so it cannot be double-submitted; other rows are
// independent.
func (s *ParticipantService) Accept(ctx context.Context, discordUserID, eventID, participantUserID string) error {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return err
	}
	key := eventID + "/" + participantUserID
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return domain.ErrActionInFlight
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	return s.events.AcceptParticipation(ctx, sess, eventID, participantUserID)
}
