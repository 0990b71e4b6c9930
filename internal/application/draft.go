package application

import (
	"strings"

	"mealbot/internal/domain/entities"
)

// ValidateEventDetails checks that every detail field of the draft is
// present and non-empty after trimming. It deliberately does not check
// numeric or date semantics; the backend re-validates those on
// submission.
func ValidateEventDetails(d *entities.EventDraft) bool {
	fields := []string{
		d.Title,
		d.Description,
		d.MaxParticipants,
		d.EventDate,
		d.Location,
		d.Price,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
