package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain/entities"
	pkgdiscord "mealbot/pkg/discord"
)

// HandleMeals shows the caller's meals with create/delete controls.
func (h *Handler) HandleMeals(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := userLocale(i)
	meals, err := h.meals.MyMeals(context.Background(), interactionUser(i).ID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	embeds := make([]*discordgo.MessageEmbed, 0, len(meals))
	for idx := range meals {
		if idx == 10 {
			break
		}
		embeds = append(embeds, pkgdiscord.BuildMealEmbed(&meals[idx]))
	}
	if len(embeds) == 0 {
		embeds = append(embeds, pkgdiscord.DangerEmbed(h.translate(locale, "wizard.no_meals", nil)))
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "New meal", Style: discordgo.PrimaryButton, CustomID: "meal_new"},
		}},
	}
	if opts := mealOptions(meals); len(opts) > 0 {
		components = append(components,
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "meal_edit",
					Placeholder: "Edit a meal…",
					Options:     opts,
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "meal_delete",
					Placeholder: "Delete a meal…",
					Options:     opts,
				},
			}})
	}
	respondEmbeds(s, i.Interaction, embeds, components)
}

func mealOptions(meals []entities.Meal) []discordgo.SelectMenuOption {
	opts := make([]discordgo.SelectMenuOption, 0, len(meals))
	for _, m := range meals {
		if len(opts) == 25 {
			break
		}
		desc := m.Description
		if len(desc) > 90 {
			desc = desc[:90] + "…"
		}
		opts = append(opts, discordgo.SelectMenuOption{
			Label:       m.Title,
			Value:       m.ID,
			Description: desc,
		})
	}
	return opts
}

// HandleMealComponent routes the meal_* buttons and selects.
func (h *Handler) HandleMealComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	switch customID {
	case "meal_new":
		respondModal(s, i.Interaction, "meal_create_modal", "New meal", []discordgo.MessageComponent{
			textInput("title", "Title", "Ex: Mapo tofu", discordgo.TextInputShort, true, ""),
			textInput("description", "Description", "What makes it special?", discordgo.TextInputParagraph, true, ""),
			textInput("ingredients", "Ingredients", "Comma-separated", discordgo.TextInputParagraph, true, ""),
			textInput("image_url", "Image URL", "https://…", discordgo.TextInputShort, false, ""),
		})
	case "meal_edit":
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		meal, err := h.meals.GetMeal(context.Background(), values[0])
		if err != nil {
			h.respondError(s, i, err)
			return
		}
		respondModal(s, i.Interaction, "meal_edit_modal_"+meal.ID, "Edit meal", []discordgo.MessageComponent{
			textInput("title", "Title", "", discordgo.TextInputShort, true, meal.Title),
			textInput("description", "Description", "", discordgo.TextInputParagraph, true, meal.Description),
			textInput("ingredients", "Ingredients", "", discordgo.TextInputParagraph, true, meal.Ingredients),
			textInput("image_url", "Image URL", "https://…", discordgo.TextInputShort, false, meal.ImageURL),
		})
	case "meal_delete":
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		if err := h.meals.DeleteMeal(context.Background(), interactionUser(i).ID, values[0]); err != nil {
			h.respondError(s, i, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.meal_deleted", nil))
	}
}

func (h *Handler) handleMealCreateSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	meal, err := h.meals.CreateMeal(context.Background(), interactionUser(i).ID, entities.MealCreate{
		Title:       strings.TrimSpace(values["title"]),
		Description: strings.TrimSpace(values["description"]),
		Ingredients: strings.TrimSpace(values["ingredients"]),
		ImageURL:    strings.TrimSpace(values["image_url"]),
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.meal_created", map[string]any{"Title": meal.Title}))
}

func (h *Handler) handleMealEditSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, mealID string, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ExtractModalValues(data)
	title := strings.TrimSpace(values["title"])
	description := strings.TrimSpace(values["description"])
	ingredients := strings.TrimSpace(values["ingredients"])
	imageURL := strings.TrimSpace(values["image_url"])
	update := entities.MealUpdate{
		Title:       &title,
		Description: &description,
		Ingredients: &ingredients,
	}
	if imageURL != "" {
		update.ImageURL = &imageURL
	}
	if _, err := h.meals.UpdateMeal(context.Background(), interactionUser(i).ID, mealID, update); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(userLocale(i), "notify.meal_updated", nil))
}
