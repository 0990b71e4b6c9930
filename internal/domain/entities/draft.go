package entities

// EventDraft is the mutable aggregate built up by the event-creation
// wizard. Numeric fields stay text until submission; Price is a
// digit string in minor units. Lives only in memory and is discarded
// on abandon or after a successful submission.
type EventDraft struct {
	Title           string
	Description     string
	MaxParticipants string
	EventDate       string
	Location        string
	Price           string
	SelectedMeal    *Meal
	ImageURL        string
}

// NewEventDraft returns an empty draft with the price floored at "0".
func NewEventDraft() *EventDraft {
	return &EventDraft{Price: "0"}
}
