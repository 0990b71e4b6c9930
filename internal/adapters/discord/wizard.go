package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/application"
	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	pkgdiscord "mealbot/pkg/discord"
)

// HandleHost opens a fresh event-creation wizard for the caller.
func (h *Handler) HandleHost(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	view, err := h.wizard.Start(ctx, interactionUser(i).ID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	embeds, components := h.wizardMessage(ctx, i, view)
	respondEmbeds(s, i.Interaction, embeds, components)
}

// HandleWizardComponent routes all wiz_* buttons and selects.
func (h *Handler) HandleWizardComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()
	locale := userLocale(i)
	discordUserID := interactionUser(i).ID

	action, arg, _ := strings.Cut(strings.TrimPrefix(customID, "wiz_"), "_")

	var (
		view *input.WizardView
		err  error
	)
	switch action {
	case "next":
		view, err = h.wizard.Next(discordUserID)
	case "back":
		view, err = h.wizard.Back(discordUserID)
	case "recheck":
		view, err = h.wizard.RecheckPayments(ctx, discordUserID)
	case "meal":
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		view, err = h.wizard.SelectMeal(ctx, discordUserID, values[0])
	case "digit":
		view, err = h.wizard.PriceInput(discordUserID, arg)
	case "backspace":
		view, err = h.wizard.PriceBackspace(discordUserID)

	case "edit":
		h.openDetailsModal(s, i, discordUserID)
		return

	case "connect":
		url, cerr := h.payments.StartOnboarding(ctx, discordUserID)
		if cerr != nil {
			h.respondError(s, i, cerr)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(locale, "notify.onboarding_link", map[string]any{"URL": url}))
		return

	case "cancel":
		h.wizard.Abandon(discordUserID)
		respondUpdate(s, i.Interaction,
			[]*discordgo.MessageEmbed{pkgdiscord.DangerEmbed(h.translate(locale, "wizard.cancelled", nil))},
			[]discordgo.MessageComponent{})
		return

	case "submit":
		event, serr := h.wizard.Submit(ctx, discordUserID)
		if serr != nil {
			h.respondError(s, i, serr)
			return
		}
		respondUpdate(s, i.Interaction,
			[]*discordgo.MessageEmbed{pkgdiscord.SuccessEmbed(h.translate(locale, "notify.event_created", map[string]any{"Title": event.Title}))},
			[]discordgo.MessageComponent{})
		return

	default:
		return
	}

	if err != nil {
		h.respondError(s, i, err)
		return
	}
	embeds, components := h.wizardMessage(ctx, i, view)
	respondUpdate(s, i.Interaction, embeds, components)
}

// openDetailsModal shows the free-text details form pre-filled with the
// current draft.
func (h *Handler) openDetailsModal(s *discordgo.Session, i *discordgo.InteractionCreate, discordUserID string) {
	view, err := h.wizard.View(discordUserID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	d := view.Draft
	respondModal(s, i.Interaction, "wizard_details_modal", h.translate(userLocale(i), "wizard.step_event_details", nil),
		[]discordgo.MessageComponent{
			textInput("title", "Title", "Friday pasta night", discordgo.TextInputShort, true, d.Title),
			textInput("description", "Description", "", discordgo.TextInputParagraph, true, d.Description),
			textInput("max_participants", "Max participants", "6", discordgo.TextInputShort, true, d.MaxParticipants),
			textInput("event_date", "Date and time", "2026-03-14 19:00", discordgo.TextInputShort, true, d.EventDate),
			textInput("location", "Location", "Dorm 3 kitchen", discordgo.TextInputShort, true, d.Location),
		})
}

func (h *Handler) handleWizardDetailsSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	view, err := h.wizard.SetDetails(interactionUser(i).ID, input.DraftDetails{
		Title:           values["title"],
		Description:     values["description"],
		MaxParticipants: values["max_participants"],
		EventDate:       values["event_date"],
		Location:        values["location"],
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	embeds, components := h.wizardMessage(context.Background(), i, view)
	respondUpdate(s, i.Interaction, embeds, components)
}

// wizardMessage renders the wizard screen for the view's current step.
func (h *Handler) wizardMessage(ctx context.Context, i *discordgo.InteractionCreate, view *input.WizardView) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	locale := userLocale(i)
	discordUserID := interactionUser(i).ID

	embed := &discordgo.MessageEmbed{
		Title: h.translate(locale, "wizard.title", nil),
		Color: 0xE8590C,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • %.0f%%", h.translate(locale, "wizard.step_"+view.Step.String(), nil), view.Progress),
		},
	}

	var stepRows []discordgo.MessageComponent
	switch view.Step {
	case domain.StepPaymentCheck:
		if view.AccountStatus != nil && view.AccountStatus.State() == entities.AccountActive {
			embed.Description = h.translate(locale, "wizard.payments_active", nil)
		} else {
			embed.Description = h.translate(locale, "wizard.payments_blocked", nil)
			stepRows = append(stepRows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Connect", Style: discordgo.PrimaryButton, CustomID: "wiz_connect"},
				discordgo.Button{Label: "Recheck", Style: discordgo.SecondaryButton, CustomID: "wiz_recheck"},
			}})
		}

	case domain.StepMealSelect:
		meals, err := h.wizard.MealChoices(ctx, discordUserID)
		if err != nil || len(meals) == 0 {
			embed.Description = h.translate(locale, "wizard.no_meals", nil)
			break
		}
		embed.Description = h.translate(locale, "wizard.pick_meal", nil)
		if view.Draft.SelectedMeal != nil {
			embed.Description += "\n\n✅ " + view.Draft.SelectedMeal.Title
		}
		stepRows = append(stepRows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: "wiz_meal", Placeholder: "Your meals", Options: mealOptions(meals)},
		}})

	case domain.StepEventDetails:
		embed.Description = h.translate(locale, "wizard.details_hint", nil) + "\n\n" +
			draftSummary(view) + "\n**" +
			h.translate(locale, "wizard.price_label", map[string]any{"Price": application.FormatPrice(view.Draft.Price)}) + "**"
		stepRows = append(stepRows, keypadRows()...)
		stepRows = append(stepRows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "⌫", Style: discordgo.SecondaryButton, CustomID: "wiz_backspace"},
			discordgo.Button{Label: "Edit details", Style: discordgo.PrimaryButton, CustomID: "wiz_edit"},
		}})

	case domain.StepSummary:
		embed.Description = h.translate(locale, "wizard.summary_hint", nil) + "\n\n" +
			draftSummary(view) + "\n**" +
			h.translate(locale, "wizard.price_label", map[string]any{"Price": application.FormatPrice(view.Draft.Price)}) + "**"
	}

	nav := []discordgo.MessageComponent{
		discordgo.Button{Label: "Back", Style: discordgo.SecondaryButton, CustomID: "wiz_back", Disabled: !view.CanGoBack},
	}
	if view.Step == domain.StepSummary {
		nav = append(nav, discordgo.Button{Label: "Create", Style: discordgo.SuccessButton, CustomID: "wiz_submit", Disabled: !view.StepReady})
	} else {
		nav = append(nav, discordgo.Button{Label: "Next", Style: discordgo.PrimaryButton, CustomID: "wiz_next", Disabled: !view.CanGoNext || !view.StepReady})
	}
	nav = append(nav, discordgo.Button{Label: "Cancel", Style: discordgo.DangerButton, CustomID: "wiz_cancel"})

	return []*discordgo.MessageEmbed{embed}, append(stepRows, discordgo.ActionsRow{Components: nav})
}

// draftSummary renders the filled-in draft fields, skipping empty ones.
func draftSummary(view *input.WizardView) string {
	d := view.Draft
	var b strings.Builder
	if d.SelectedMeal != nil {
		fmt.Fprintf(&b, "**Meal:** %s\n", d.SelectedMeal.Title)
	}
	if d.Title != "" {
		fmt.Fprintf(&b, "**Title:** %s\n", d.Title)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n", d.Description)
	}
	if d.EventDate != "" {
		fmt.Fprintf(&b, "**When:** %s\n", d.EventDate)
	}
	if d.Location != "" {
		fmt.Fprintf(&b, "**Where:** %s\n", d.Location)
	}
	if d.MaxParticipants != "" {
		fmt.Fprintf(&b, "**Seats:** %s\n", d.MaxParticipants)
	}
	return b.String()
}

// keypadRows lays the ten digit buttons out phone-style.
func keypadRows() []discordgo.MessageComponent {
	digitButton := func(d string) discordgo.Button {
		return discordgo.Button{Label: d, Style: discordgo.SecondaryButton, CustomID: "wiz_digit_" + d}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			digitButton("1"), digitButton("2"), digitButton("3"), digitButton("4"), digitButton("5"),
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			digitButton("6"), digitButton("7"), digitButton("8"), digitButton("9"), digitButton("0"),
		}},
	}
}
