package application

import (
	"context"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

type MealService struct {
	meals    output.MealAPI
	sessions *SessionService

	analytics output.Analytics
}

func NewMealService(meals output.MealAPI, sessions *SessionService, analytics output.Analytics) *MealService {
	return &MealService{meals: meals, sessions: sessions, analytics: analytics}
}

func (s *MealService) CreateMeal(ctx context.Context, discordUserID string, create entities.MealCreate) (*entities.Meal, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	meal, err := s.meals.Create(ctx, sess, create)
	if err != nil {
		return nil, err
	}
	s.analytics.MealCreated(sess.User.ID, meal)
	return meal, nil
}

func (s *MealService) MyMeals(ctx context.Context, discordUserID string) ([]entities.Meal, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByUser(ctx, sess.User.ID)
}

func (s *MealService) GetMeal(ctx context.Context, mealID string) (*entities.Meal, error) {
	return s.meals.Get(ctx, mealID)
}

func (s *MealService) UpdateMeal(ctx context.Context, discordUserID, mealID string, update entities.MealUpdate) (*entities.Meal, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.meals.Update(ctx, sess, mealID, update)
}

func (s *MealService) DeleteMeal(ctx context.Context, discordUserID, mealID string) error {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return err
	}
	return s.meals.Delete(ctx, sess, mealID)
}
