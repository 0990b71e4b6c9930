package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	pkgdiscord "mealbot/pkg/discord"
)

// HandlePayments shows the payment-account status card.
func (h *Handler) HandlePayments(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Requires a session; Status itself never fails, so check up front.
	sess, err := h.sessions.Current(context.Background(), interactionUser(i).ID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if !sess.LoggedIn() {
		h.respondError(s, i, domain.ErrNotLoggedIn)
		return
	}
	embeds, components := h.paymentsCard(i)
	respondEmbeds(s, i.Interaction, embeds, components)
}

// HandlePaymentComponent routes the pay_* buttons.
func (h *Handler) HandlePaymentComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()
	locale := userLocale(i)
	discordUserID := interactionUser(i).ID

	switch customID {
	case "pay_connect":
		url, err := h.payments.StartOnboarding(ctx, discordUserID)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.onboarding_link", map[string]any{"URL": url}))

	case "pay_dashboard":
		url, err := h.payments.DashboardLogin(ctx, discordUserID)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.dashboard_link", map[string]any{"URL": url}))

	case "pay_refresh":
		embeds, components := h.paymentsCard(i)
		respondUpdate(s, i.Interaction, embeds, components)
	}
}

// paymentsCard renders the status embed plus the actions the current
// lifecycle state allows.
func (h *Handler) paymentsCard(i *discordgo.InteractionCreate) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	locale := userLocale(i)
	status := h.payments.Status(context.Background(), interactionUser(i).ID)
	state := status.State()

	embed := &discordgo.MessageEmbed{
		Title:       "Payments",
		Description: h.translate(locale, "ui.status_"+state.String(), nil),
		Color:       0xE8590C,
	}
	if state == entities.AccountActive {
		embed = pkgdiscord.SuccessEmbed(h.translate(locale, "ui.status_active", nil))
		embed.Title = "Payments"
	}

	buttons := []discordgo.MessageComponent{}
	switch state {
	case entities.AccountNotConnected, entities.AccountOnboardingIncomplete:
		buttons = append(buttons, discordgo.Button{Label: "Connect", Style: discordgo.PrimaryButton, CustomID: "pay_connect"})
	case entities.AccountActive:
		buttons = append(buttons, discordgo.Button{Label: "Dashboard", Style: discordgo.PrimaryButton, CustomID: "pay_dashboard"})
	}
	buttons = append(buttons, discordgo.Button{Label: "Refresh", Style: discordgo.SecondaryButton, CustomID: "pay_refresh"})

	return []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}
