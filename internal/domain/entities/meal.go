package entities

import "time"

// Meal is a reusable dish template a host selects when creating an event.
type Meal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MealCreate is the creation payload.
type MealCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// MealUpdate is a partial update; nil fields are left untouched.
type MealUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Ingredients *string `json:"ingredients,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
