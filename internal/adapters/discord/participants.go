package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain"
)

// showParticipants lists an event's participants with an accept button
// per row that still awaits confirmation.
func (h *Handler) showParticipants(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, eventID string) {
	locale := userLocale(i)
	parts, err := h.participants.Participants(ctx, interactionUser(i).ID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Participants",
		Color: 0xE8590C,
	}
	if len(parts) == 0 {
		embed.Description = h.translate(locale, "ui.empty_participants", nil)
		respondEmbeds(s, i.Interaction, []*discordgo.MessageEmbed{embed}, nil)
		return
	}

	var buttons []discordgo.MessageComponent
	for _, p := range parts {
		label := "⏳"
		switch p.Status {
		case domain.StatusConfirmed:
			label = "✅"
		case domain.StatusCancelled:
			label = "❌"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s <@%s>", label, p.ParticipantID),
			Value: p.JoinedAt.Format("2006-01-02 15:04"),
		})
		if p.Status != domain.StatusConfirmed && p.Status != domain.StatusCancelled && len(buttons) < 5 {
			buttons = append(buttons, discordgo.Button{
				Label:    "Accept " + shortID(p.ParticipantID),
				Style:    discordgo.SuccessButton,
				CustomID: "accept_" + eventID + "_" + p.ParticipantID,
			})
		}
	}

	var components []discordgo.MessageComponent
	if len(buttons) > 0 {
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	respondEmbeds(s, i.Interaction, []*discordgo.MessageEmbed{embed}, components)
}

// HandleAccept confirms one participant. The custom id carries
// "<eventID>_<participantUserID>".
func (h *Handler) HandleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	eventID, participantID, ok := strings.Cut(arg, "_")
	if !ok {
		return
	}
	if err := h.participants.Accept(context.Background(), interactionUser(i).ID, eventID, participantID); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.participant_accepted", nil))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
