package application

import (
	"context"
	"log"
	"sync"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	"mealbot/internal/ports/output"
)

type EventService struct {
	events   output.EventAPI
	sessions *SessionService
}

func NewEventService(events output.EventAPI, sessions *SessionService) *EventService {
	return &EventService{events: events, sessions: sessions}
}

// Listings fetches the all/mine/joined listings concurrently and
// returns once all three settled; a failure in one never cancels the
// others. Mine and joined failures are commonly unauthenticated-user
// 404s, so they resolve to empty listings instead of errors. A public
// listing failure is carried in AllErr for the caller to surface.
func (s *EventService) Listings(ctx context.Context, discordUserID string) (*input.Listings, error) {
	sess, err := s.sessions.Current(ctx, discordUserID)
	if err != nil {
		log.Printf("⚠️ Session lookup failed for %s: %v", discordUserID, err)
		sess = nil
	}

	listings := &input.Listings{}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		all, err := s.events.List(ctx)
		if err != nil {
			log.Printf("❌ Listing fetch failed: %v", err)
			listings.AllErr = err
			return
		}
		listings.All = all
	}()
	go func() {
		defer wg.Done()
		listings.Mine = s.quietFetch(ctx, sess, "mine", s.events.Mine)
	}()
	go func() {
		defer wg.Done()
		listings.Joined = s.quietFetch(ctx, sess, "joined", s.events.Joined)
	}()

	wg.Wait()
	return listings, nil
}

// quietFetch runs an authenticated listing fetch whose failure is an
// empty state, not an error.
func (s *EventService) quietFetch(ctx context.Context, sess *entities.Session, name string,
	fetch func(context.Context, *entities.Session) ([]entities.Event, error)) []entities.Event {
	if !sess.LoggedIn() {
		return []entities.Event{}
	}
	events, err := fetch(ctx, sess)
	if err != nil {
		log.Printf("⚠️ %s listing fetch failed, treating as empty: %v", name, err)
		return []entities.Event{}
	}
	return events
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	return s.events.Get(ctx, eventID)
}

func (s *EventService) UpdateEvent(ctx context.Context, discordUserID, eventID string, update entities.EventUpdate) (*entities.Event, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.events.Update(ctx, sess, eventID, update)
}

func (s *EventService) DeleteEvent(ctx context.Context, discordUserID, eventID string) error {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return err
	}
	return s.events.Delete(ctx, sess, eventID)
}

func (s *EventService) Refund(ctx context.Context, discordUserID, eventID string) (*entities.RefundResult, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.events.Refund(ctx, sess, eventID)
}
