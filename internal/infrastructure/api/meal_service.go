package api

import (
	"context"
	"net/http"
	"net/url"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

var _ output.MealAPI = (*MealService)(nil)

// MealService maps the /meals REST resource.
type MealService struct {
	c *Client
}

func NewMealService(c *Client) *MealService {
	return &MealService{c: c}
}

func (s *MealService) Create(ctx context.Context, sess *entities.Session, create entities.MealCreate) (*entities.Meal, error) {
	var meal entities.Meal
	if err := s.c.do(ctx, request{method: http.MethodPost, path: "/meals/", sess: sess, json: create, out: &meal}); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListByUser(ctx context.Context, userID string) ([]entities.Meal, error) {
	var meals []entities.Meal
	q := url.Values{"user_id": {userID}}
	err := s.c.do(ctx, request{method: http.MethodGet, path: "/meals/", query: q, out: &meals})
	return meals, err
}

func (s *MealService) Get(ctx context.Context, mealID string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := s.c.do(ctx, request{method: http.MethodGet, path: "/meals/" + mealID, out: &meal}); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Update(ctx context.Context, sess *entities.Session, mealID string, update entities.MealUpdate) (*entities.Meal, error) {
	var meal entities.Meal
	if err := s.c.do(ctx, request{method: http.MethodPut, path: "/meals/" + mealID, sess: sess, json: update, out: &meal}); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Delete(ctx context.Context, sess *entities.Session, mealID string) error {
	return s.c.do(ctx, request{method: http.MethodDelete, path: "/meals/" + mealID, sess: sess})
}
