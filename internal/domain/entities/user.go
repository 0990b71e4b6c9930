package entities

import "time"

// User mirrors the backend's user resource.
type User struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Email                    string    `json:"email"`
	University               string    `json:"university,omitempty"`
	Description              string    `json:"description,omitempty"`
	ProfilePicture           string    `json:"profile_picture,omitempty"`
	StripeAccountID          string    `json:"stripe_account_id,omitempty"`
	StripeOnboardingComplete bool      `json:"stripe_onboarding_complete,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
}

// UserCreate is the signup payload.
type UserCreate struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	University string `json:"university,omitempty"`
}

// UserUpdate is a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	University     *string `json:"university,omitempty"`
	Description    *string `json:"description,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
