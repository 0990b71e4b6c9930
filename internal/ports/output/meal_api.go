package output

import (
	"context"

	"mealbot/internal/domain/entities"
)

type MealAPI interface {
	Create(ctx context.Context, sess *entities.Session, create entities.MealCreate) (*entities.Meal, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Meal, error)
	Get(ctx context.Context, mealID string) (*entities.Meal, error)
	Update(ctx context.Context, sess *entities.Session, mealID string, update entities.MealUpdate) (*entities.Meal, error)
	Delete(ctx context.Context, sess *entities.Session, mealID string) error
}
