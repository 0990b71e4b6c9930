package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleModalSubmit routes modal submissions by CustomID. Edit modals
// carry the target id as a suffix.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	switch {
	case strings.HasPrefix(data.CustomID, "meal_edit_modal_"):
		h.handleMealEditSubmit(s, i, strings.TrimPrefix(data.CustomID, "meal_edit_modal_"), data)
		return
	case strings.HasPrefix(data.CustomID, "event_edit_modal_"):
		h.handleEventEditSubmit(s, i, strings.TrimPrefix(data.CustomID, "event_edit_modal_"), data)
		return
	}

	switch data.CustomID {
	case "login_modal":
		h.handleLoginSubmit(s, i, data)
	case "signup_modal":
		h.handleSignupSubmit(s, i, data)
	case "profile_edit_modal":
		h.handleProfileEditSubmit(s, i, data)
	case "meal_create_modal":
		h.handleMealCreateSubmit(s, i, data)
	case "wizard_details_modal":
		h.handleWizardDetailsSubmit(s, i, data)
	default:
		// Unknown modal: ignore silently to stay robust.
	}
}
