package entities

import "time"

// Event is a hosted meal session with capacity, date, location and price.
// Price is in minor currency units (cents).
type Event struct {
	ID                  string    `json:"id"`
	HostUserID          string    `json:"hostUserId"`
	MealID              string    `json:"mealId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Location            string    `json:"location"`
	EventDate           time.Time `json:"eventDate"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	Price               int       `json:"price"`
	Currency            string    `json:"currency"`
	CreatedAt           time.Time `json:"createdAt"`
}

// EventUpdate is a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
	Location        *string    `json:"location,omitempty"`
	EventDate       *time.Time `json:"eventDate,omitempty"`
	Price           *int       `json:"price,omitempty"`
}

// Participant is a user's paid participation in an event.
type Participant struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	ParticipantID   string    `json:"participant_id"`
	JoinedAt        time.Time `json:"joined_at"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	Status          string    `json:"status"`
}
