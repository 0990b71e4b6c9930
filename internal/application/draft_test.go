package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealbot/internal/domain/entities"
)

func completeDraft() *entities.EventDraft {
	return &entities.EventDraft{
		Title:           "Pasta night",
		Description:     "Fresh tagliatelle for six.",
		MaxParticipants: "6",
		EventDate:       "2026-03-14 19:00",
		Location:        "Dorm 3 kitchen",
		Price:           "1250",
	}
}

func TestValidateEventDetailsComplete(t *testing.T) {
	assert.True(t, ValidateEventDetails(completeDraft()))
}

func TestValidateEventDetailsMissingField(t *testing.T) {
	clear := []struct {
		name  string
		mutate func(*entities.EventDraft)
	}{
		{"title", func(d *entities.EventDraft) { d.Title = "" }},
		{"description", func(d *entities.EventDraft) { d.Description = "" }},
		{"max participants", func(d *entities.EventDraft) { d.MaxParticipants = "" }},
		{"event date", func(d *entities.EventDraft) { d.EventDate = "" }},
		{"location", func(d *entities.EventDraft) { d.Location = "" }},
		{"price", func(d *entities.EventDraft) { d.Price = "" }},
	}
	for _, tt := range clear {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(d)
			assert.False(t, ValidateEventDetails(d))
		})
	}
}

func TestValidateEventDetailsWhitespaceOnly(t *testing.T) {
	d := completeDraft()
	d.Location = "   \t"
	assert.False(t, ValidateEventDetails(d))
}

func TestValidateEventDetailsIgnoresContentSemantics(t *testing.T) {
	// Presence only: garbage numbers and dates still pass, the backend
	// re-validates them on submission.
	d := completeDraft()
	d.MaxParticipants = "not-a-number"
	d.EventDate = "someday"
	assert.True(t, ValidateEventDetails(d))
}

func TestNewEventDraftStartsAtZeroPrice(t *testing.T) {
	d := entities.NewEventDraft()
	assert.Equal(t, "0", d.Price)
	assert.Nil(t, d.SelectedMeal)
}
