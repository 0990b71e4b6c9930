package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/application"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	pkgdiscord "mealbot/pkg/discord"
)

// HandleEvents shows the three listings as a tabbed ephemeral message.
func (h *Handler) HandleEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := userLocale(i)
	listings, err := h.events.Listings(context.Background(), interactionUser(i).ID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	embeds, components := h.renderListings(locale, listings, "all")
	respondEmbeds(s, i.Interaction, embeds, components)
}

// HandleListingTab re-renders the message on another tab.
func (h *Handler) HandleListingTab(s *discordgo.Session, i *discordgo.InteractionCreate, tab string) {
	locale := userLocale(i)
	listings, err := h.events.Listings(context.Background(), interactionUser(i).ID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	embeds, components := h.renderListings(locale, listings, tab)
	respondUpdate(s, i.Interaction, embeds, components)
}

// renderListings builds the tabbed listing message. The public listing
// surfaces its fetch failure; mine/joined arrive already degraded to
// empty.
func (h *Handler) renderListings(locale string, listings *input.Listings, activeTab string) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	var (
		events []entities.Event
		title  string
		empty  string
	)
	switch activeTab {
	case "my":
		events, title, empty = listings.Mine, h.translate(locale, "ui.tab_my", nil), h.translate(locale, "ui.empty_my", nil)
	case "joined":
		events, title, empty = listings.Joined, h.translate(locale, "ui.tab_joined", nil), h.translate(locale, "ui.empty_joined", nil)
	default:
		activeTab = "all"
		events, title, empty = listings.All, h.translate(locale, "ui.tab_all", nil), h.translate(locale, "ui.empty_all", nil)
	}

	embeds := []*discordgo.MessageEmbed{}
	if activeTab == "all" && listings.AllErr != nil {
		embeds = append(embeds, pkgdiscord.DangerEmbed(h.translate(locale, "errors.load_events_failed", nil)))
	}
	embeds = append(embeds, pkgdiscord.BuildEventListEmbed(title, events, empty))

	tabStyle := func(tab string) discordgo.ButtonStyle {
		if tab == activeTab {
			return discordgo.PrimaryButton
		}
		return discordgo.SecondaryButton
	}
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: h.translate(locale, "ui.tab_all", nil), Style: tabStyle("all"), CustomID: "tab_all"},
			discordgo.Button{Label: h.translate(locale, "ui.tab_my", nil), Style: tabStyle("my"), CustomID: "tab_my"},
			discordgo.Button{Label: h.translate(locale, "ui.tab_joined", nil), Style: tabStyle("joined"), CustomID: "tab_joined"},
		}},
	}
	if opts := eventOptions(events); len(opts) > 0 {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    "ev_pick_" + activeTab,
				Placeholder: "Open an event…",
				Options:     opts,
			},
		}})
	}
	return embeds, components
}

func eventOptions(events []entities.Event) []discordgo.SelectMenuOption {
	opts := make([]discordgo.SelectMenuOption, 0, len(events))
	for _, e := range events {
		if len(opts) == 25 {
			break
		}
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       e.Title,
			Value:       e.ID,
			Description: e.Location,
		})
	}
	return opts
}

// HandleEventAction routes the ev_* selects and buttons.
func (h *Handler) HandleEventAction(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()
	locale := userLocale(i)
	discordUserID := interactionUser(i).ID

	rest := strings.TrimPrefix(customID, "ev_")
	action, arg, _ := strings.Cut(rest, "_")

	switch action {
	case "pick":
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		h.showEventCard(ctx, s, i, values[0], arg)

	case "join":
		handoff, err := h.payments.BeginJoin(ctx, discordUserID, arg)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.checkout_link", map[string]any{
			"Title": handoff.Event.Title,
			"Price": application.FormatCents(handoff.Event.Price),
			"URL":   handoff.CheckoutURL,
		}))

	case "refund":
		respondEmbeds(s, i.Interaction,
			[]*discordgo.MessageEmbed{pkgdiscord.DangerEmbed(h.translate(locale, "ui.confirm_refund", nil))},
			[]discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Cancel participation", Style: discordgo.DangerButton, CustomID: "ev_refundgo_" + arg},
			}}})

	case "refundgo":
		result, err := h.events.Refund(ctx, discordUserID, arg)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.refund_ok", map[string]any{
			"Amount": application.FormatCents(result.RefundAmountCents),
		}))

	case "delete":
		respondEmbeds(s, i.Interaction,
			[]*discordgo.MessageEmbed{pkgdiscord.DangerEmbed(h.translate(locale, "ui.confirm_delete", nil))},
			[]discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Delete event", Style: discordgo.DangerButton, CustomID: "ev_deletego_" + arg},
			}}})

	case "deletego":
		if err := h.events.DeleteEvent(ctx, discordUserID, arg); err != nil {
			// Surfaces the backend's own message when the event still
			// has participants.
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.event_deleted", nil))

	case "edit":
		event, err := h.events.GetEvent(ctx, arg)
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondModal(s, i.Interaction, "event_edit_modal_"+event.ID, "Edit event", []discordgo.MessageComponent{
			textInput("title", "Title", "", discordgo.TextInputShort, true, event.Title),
			textInput("description", "Description", "", discordgo.TextInputParagraph, true, event.Description),
			textInput("max_participants", "Max participants", "6", discordgo.TextInputShort, true, strconv.Itoa(event.MaxParticipants)),
			textInput("event_date", "Date and time", "2026-03-14 19:00", discordgo.TextInputShort, true, event.EventDate.Local().Format("2006-01-02 15:04")),
			textInput("location", "Location", "", discordgo.TextInputShort, true, event.Location),
		})

	case "parts":
		h.showParticipants(ctx, s, i, arg)
	}
}

func (h *Handler) handleEventEditSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, eventID string, data discordgo.ModalSubmitInteractionData) {
	locale := userLocale(i)
	values := pkgdiscord.ExtractModalValues(data)

	slots, err := strconv.Atoi(strings.TrimSpace(values["max_participants"]))
	if err != nil || slots <= 0 {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.invalid_slots", nil))
		return
	}
	eventDate, err := application.ParseEventDateTime(values["event_date"])
	if err != nil {
		respondEphemeral(s, i.Interaction, h.translate(locale, "errors.invalid_datetime", nil))
		return
	}
	title := strings.TrimSpace(values["title"])
	description := strings.TrimSpace(values["description"])
	location := strings.TrimSpace(values["location"])

	_, err = h.events.UpdateEvent(context.Background(), interactionUser(i).ID, eventID, entities.EventUpdate{
		Title:           &title,
		Description:     &description,
		MaxParticipants: &slots,
		Location:        &location,
		EventDate:       &eventDate,
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(locale, "notify.event_updated", nil))
}

// showEventCard renders one event with the actions the caller can take
// on it, derived from which listing it came from.
func (h *Handler) showEventCard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, eventID, tab string) {
	discordUserID := interactionUser(i).ID
	event, err := h.events.GetEvent(ctx, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	listings, err := h.events.Listings(ctx, discordUserID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	joined := listings.HasJoined(eventID)

	var buttons []discordgo.MessageComponent
	switch {
	case tab == "my":
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Participants", Style: discordgo.SecondaryButton, CustomID: "ev_parts_" + eventID},
			discordgo.Button{Label: "Edit", Style: discordgo.SecondaryButton, CustomID: "ev_edit_" + eventID},
			discordgo.Button{Label: "Delete", Style: discordgo.DangerButton, CustomID: "ev_delete_" + eventID},
		}
	case joined:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Cancel participation", Style: discordgo.DangerButton, CustomID: "ev_refund_" + eventID},
		}
	default:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Join", Style: discordgo.PrimaryButton, CustomID: "ev_join_" + eventID},
		}
	}

	respondEmbeds(s, i.Interaction,
		[]*discordgo.MessageEmbed{pkgdiscord.BuildEventEmbed(event, joined)},
		[]discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}})
}
