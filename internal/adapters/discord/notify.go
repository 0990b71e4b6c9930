package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/ports/input"
	pkgdiscord "mealbot/pkg/discord"
)

// Notifier delivers out-of-band results (hosted checkout and onboarding
// redirects land on the callback listener, not on an interaction) as
// direct messages.
type Notifier struct {
	session *discordgo.Session
	handler *Handler
	locale  string
}

func NewNotifier(session *discordgo.Session, handler *Handler, defaultLocale string) *Notifier {
	return &Notifier{session: session, handler: handler, locale: defaultLocale}
}

// NotifyCheckoutResult tells the user how their payment ended and, on
// success, shows the refreshed joined listing.
func (n *Notifier) NotifyCheckoutResult(rec *input.Reconciliation) {
	ch, err := n.session.UserChannelCreate(rec.DiscordUserID)
	if err != nil {
		log.Printf("⚠️ Failed to open DM with %s: %v", rec.DiscordUserID, err)
		return
	}

	if !rec.Completed {
		_, err = n.session.ChannelMessageSendEmbed(ch.ID,
			pkgdiscord.DangerEmbed(n.handler.translate(n.locale, "notify.payment_incomplete", nil)))
		if err != nil {
			log.Printf("⚠️ Failed to DM %s: %v", rec.DiscordUserID, err)
		}
		return
	}

	embeds := []*discordgo.MessageEmbed{
		pkgdiscord.SuccessEmbed(n.handler.translate(n.locale, "notify.booked_ok", nil)),
	}
	if rec.Listings != nil {
		embeds = append(embeds, pkgdiscord.BuildEventListEmbed(
			n.handler.translate(n.locale, "ui.tab_joined", nil),
			rec.Listings.Joined,
			n.handler.translate(n.locale, "ui.empty_joined", nil)))
	}
	_, err = n.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{Embeds: embeds})
	if err != nil {
		log.Printf("⚠️ Failed to DM %s: %v", rec.DiscordUserID, err)
	}
}

// NotifyOnboardingReturn nudges the user to recheck their account after
// they come back from hosted onboarding.
func (n *Notifier) NotifyOnboardingReturn(discordUserID string) {
	ch, err := n.session.UserChannelCreate(discordUserID)
	if err != nil {
		log.Printf("⚠️ Failed to open DM with %s: %v", discordUserID, err)
		return
	}
	_, err = n.session.ChannelMessageSend(ch.ID, n.handler.translate(n.locale, "notify.onboarding_return", nil))
	if err != nil {
		log.Printf("⚠️ Failed to DM %s: %v", discordUserID, err)
	}
}
