package input

import (
	"context"

	"mealbot/internal/domain/entities"
)

type MealUseCase interface {
	CreateMeal(ctx context.Context, discordUserID string, create entities.MealCreate) (*entities.Meal, error)
	MyMeals(ctx context.Context, discordUserID string) ([]entities.Meal, error)
	GetMeal(ctx context.Context, mealID string) (*entities.Meal, error)
	UpdateMeal(ctx context.Context, discordUserID, mealID string, update entities.MealUpdate) (*entities.Meal, error)
	DeleteMeal(ctx context.Context, discordUserID, mealID string) error
}
