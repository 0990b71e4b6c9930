package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.EventAPI = (*EventService)(nil)

// EventService maps the /events REST resource, one typed operation per
// endpoint.
type EventService struct {
	c *Client
}

func NewEventService(c *Client) *EventService {
	return &EventService{c: c}
}

// Create posts the new event; multipart when an image rides along,
// plain JSON otherwise.
func (s *EventService) Create(ctx context.Context, sess *entities.Session, create output.EventCreate) (*entities.Event, error) {
	var event entities.Event
	if create.ImageURL == "" {
		payload := map[string]any{
			"mealId":          create.MealID,
			"title":           create.Title,
			"description":     create.Description,
			"maxParticipants": create.MaxParticipants,
			"location":        create.Location,
			"eventDate":       create.EventDate,
			"price":           create.Price,
		}
		if err := s.c.do(ctx, request{method: http.MethodPost, path: "/events/", sess: sess, json: payload, out: &event}); err != nil {
			return nil, err
		}
		return &event, nil
	}

	image, filename, err := fetchImage(ctx, s.c.httpc, create.ImageURL)
	if err != nil {
		return nil, err
	}
	form, err := newMultipartBody(map[string]string{
		"mealId":          create.MealID,
		"title":           create.Title,
		"description":     create.Description,
		"maxParticipants": strconv.Itoa(create.MaxParticipants),
		"location":        create.Location,
		"eventDate":       create.EventDate,
		"price":           strconv.Itoa(create.Price),
	}, "image", filename, image)
	if err != nil {
		return nil, err
	}
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/events/", sess: sess, form: form, out: &event}); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) List(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/", out: &events})
	return events, err
}

func (s *EventService) ListByUser(ctx context.Context, userID string) ([]entities.Event, error) {
	var events []entities.Event
	q := url.Values{"user_id": {userID}}
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/", query: q, out: &events})
	return events, err
}

func (s *EventService) Get(ctx context.Context, eventID string) (*entities.Event, error) {
	var event entities.Event
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/" + eventID, out: &event}); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Mine(ctx context.Context, sess *entities.Session) ([]entities.Event, error) {
	var events []entities.Event
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/me", sess: sess, out: &events})
	return events, err
}

func (s *EventService) Joined(ctx context.Context, sess *entities.Session) ([]entities.Event, error) {
	var events []entities.Event
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/me/joined", sess: sess, out: &events})
	return events, err
}

func (s *EventService) Participants(ctx context.Context, sess *entities.Session, eventID string) ([]entities.Participant, error) {
	var participants []entities.Participant
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/events/" + eventID + "/participants", sess: sess, out: &participants})
	return participants, err
}

func (s *EventService) AcceptParticipation(ctx context.Context, sess *entities.Session, eventID, userID string) error {
	payload := map[string]string{"event_id": eventID, "user_id": userID}
	return s.c.do(ctx, request{method: http.MethodPost, path: "/events/accept-participation", sess: sess, json: payload})
}

func (s *EventService) Update(ctx context.Context, sess *entities.Session, eventID string, update entities.EventUpdate) (*entities.Event, error) {
	var event entities.Event
	if err := s.c.do(ctx, request{method: http.MethodPut, path: "/events/" + eventID, sess: sess, json: update, out: &event}); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, sess *entities.Session, eventID string) error {
	return s.c.do(ctx, request{method: http.MethodDelete, path: "/events/" + eventID, sess: sess})
}

func (s *EventService) Refund(ctx context.Context, sess *entities.Session, eventID string) (*entities.RefundResult, error) {
	var result entities.RefundResult
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/events/" + eventID + "/refund", sess: sess, out: &result}); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *EventService) CreateCheckoutSession(ctx context.Context, sess *entities.Session, eventID string) (*entities.CheckoutSession, error) {
	var session entities.CheckoutSession
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/events/" + eventID + "/create-checkout-session", sess: sess, out: &session}); err != nil {
		return nil, err
	}
	return &session, nil
}

// fetchImage downloads an attachment so it can be re-sent as a
// multipart file part.
func fetchImage(ctx context.Context, httpc *http.Client, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	name := path.Base(req.URL.Path)
	if name == "/" || name == "." {
		name = "image"
	}
	return data, name, nil
}
