package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain/entities"
	pkgdiscord "mealbot/pkg/discord"
)

func (h *Handler) HandleLoginCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondModal(s, i.Interaction, "login_modal", "Log in", []discordgo.MessageComponent{
		textInput("email", "Email", "you@campus.edu", discordgo.TextInputShort, true, ""),
		textInput("password", "Password", "", discordgo.TextInputShort, true, ""),
	})
}

func (h *Handler) handleLoginSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	user, err := h.sessions.Login(context.Background(), interactionUser(i).ID, strings.TrimSpace(values["email"]), values["password"])
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.login_ok", map[string]any{"Name": user.Name}))
}

func (h *Handler) HandleSignupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondModal(s, i.Interaction, "signup_modal", "Create account", []discordgo.MessageComponent{
		textInput("name", "Name", "", discordgo.TextInputShort, true, ""),
		textInput("email", "Email", "you@campus.edu", discordgo.TextInputShort, true, ""),
		textInput("password", "Password", "", discordgo.TextInputShort, true, ""),
		textInput("university", "University", "", discordgo.TextInputShort, false, ""),
	})
}

func (h *Handler) handleSignupSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	user, err := h.sessions.Signup(context.Background(), interactionUser(i).ID, entities.UserCreate{
		Name:       strings.TrimSpace(values["name"]),
		Email:      strings.TrimSpace(values["email"]),
		Password:   values["password"],
		University: strings.TrimSpace(values["university"]),
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.signup_ok", map[string]any{"Name": user.Name}))
}

func (h *Handler) HandleLogout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.sessions.Logout(context.Background(), interactionUser(i).ID); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.logout_ok", nil))
}

func (h *Handler) HandleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	discordUserID := interactionUser(i).ID

	userID := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			userID = opt.StringValue()
		}
	}
	if userID == "" {
		sess, err := h.sessions.Current(ctx, discordUserID)
		if err != nil || sess == nil || sess.User == nil {
			respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "errors.not_logged_in", nil))
			return
		}
		userID = sess.User.ID
	}

	user, err := h.sessions.Profile(ctx, discordUserID, userID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	components := []discordgo.MessageComponent{}
	if sess, err := h.sessions.Current(ctx, discordUserID); err == nil && sess != nil && sess.User != nil && sess.User.ID == user.ID {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Edit profile", Style: discordgo.SecondaryButton, CustomID: "profile_edit"},
		}})
	}
	respondEmbeds(s, i.Interaction, []*discordgo.MessageEmbed{pkgdiscord.BuildProfileEmbed(user)}, components)
}

func (h *Handler) handleProfileEdit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	sess, err := h.sessions.Current(ctx, interactionUser(i).ID)
	if err != nil || sess == nil || sess.User == nil {
		respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "errors.not_logged_in", nil))
		return
	}
	respondModal(s, i.Interaction, "profile_edit_modal", "Edit profile", []discordgo.MessageComponent{
		textInput("university", "University", "", discordgo.TextInputShort, false, sess.User.University),
		textInput("description", "About you", "", discordgo.TextInputParagraph, false, sess.User.Description),
		textInput("picture_url", "Picture URL", "https://…", discordgo.TextInputShort, false, ""),
	})
}

func (h *Handler) handleProfileEditSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	university := strings.TrimSpace(values["university"])
	description := strings.TrimSpace(values["description"])
	ctx := context.Background()
	discordUserID := interactionUser(i).ID
	_, err := h.sessions.UpdateProfile(ctx, discordUserID, entities.UserUpdate{
		University:  &university,
		Description: &description,
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if pictureURL := strings.TrimSpace(values["picture_url"]); pictureURL != "" {
		if _, err := h.sessions.UpdateProfilePicture(ctx, discordUserID, pictureURL); err != nil {
			h.respondError(s, i, err)
			return
		}
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.profile_updated", nil))
}
