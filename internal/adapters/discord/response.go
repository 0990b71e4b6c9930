package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain"
	"mealbot/internal/ports/output"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// interactionUser works in both guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func userLocale(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbeds(s *discordgo.Session, i *discordgo.Interaction, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondUpdate edits the message the component interaction came from.
func respondUpdate(s *discordgo.Session, i *discordgo.Interaction, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondModal(s *discordgo.Session, i *discordgo.Interaction, customID, title string, components []discordgo.MessageComponent) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
}

func followupEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_, _ = s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// errorMessage resolves an error to user-facing text: domain codes go
// through i18n, backend rejections keep their own message verbatim,
// anything else falls back to the generic line.
func (h *Handler) errorMessage(locale string, err error) string {
	if code := domain.Code(err); code != "" {
		return h.translate(locale, "errors."+code, nil)
	}
	var apiErr *output.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return h.translate(locale, "errors.generic", nil)
}

func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondEphemeral(s, i.Interaction, h.errorMessage(userLocale(i), err))
}

func textInput(customID, label, placeholder string, style discordgo.TextInputStyle, required bool, value string) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    customID,
			Label:       label,
			Style:       style,
			Required:    required,
			Placeholder: placeholder,
			Value:       value,
		},
	}}
}
