package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/domain/entities"
)

const (
	embedColor        = 0xE8590C
	embedColorSuccess = 0x2F9E44
	embedColorDanger  = 0xC92A2A
)

func formatSeats(current, max int) string {
	return fmt.Sprintf("%d/%d", current, max)
}

func formatCents(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Mon, 02 Jan 2006 at 15:04")
}

// BuildEventEmbed renders one event card.
func BuildEventEmbed(event *entities.Event, joined bool) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(event.Description)
	b.WriteString(fmt.Sprintf("\n\n**When:** %s", formatDate(event.EventDate)))
	b.WriteString(fmt.Sprintf("\n**Where:** %s", event.Location))
	b.WriteString(fmt.Sprintf("\n**Seats:** %s", formatSeats(event.CurrentParticipants, event.MaxParticipants)))
	b.WriteString(fmt.Sprintf("\n**Price:** %s", formatCents(event.Price)))
	if joined {
		b.WriteString("\n\n✅ You're in.")
	}
	embed := &discordgo.MessageEmbed{
		Title:       event.Title,
		Description: b.String(),
		Color:       embedColor,
	}
	if event.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: event.ImageURL}
	}
	return embed
}

// BuildEventListEmbed renders a listing tab as one embed, one field per
// event.
func BuildEventListEmbed(title string, events []entities.Event, emptyText string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
	}
	if len(events) == 0 {
		embed.Description = emptyText
		return embed
	}
	for _, e := range events {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: e.Title,
			Value: fmt.Sprintf("%s • %s • %s • %s",
				formatDate(e.EventDate), e.Location,
				formatSeats(e.CurrentParticipants, e.MaxParticipants), formatCents(e.Price)),
		})
	}
	return embed
}

// BuildMealEmbed renders one meal card.
func BuildMealEmbed(meal *entities.Meal) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       meal.Title,
		Description: fmt.Sprintf("%s\n\n**Ingredients:** %s", meal.Description, meal.Ingredients),
		Color:       embedColor,
	}
	if meal.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: meal.ImageURL}
	}
	return embed
}

// BuildProfileEmbed renders a user profile.
func BuildProfileEmbed(user *entities.User) *discordgo.MessageEmbed {
	var b strings.Builder
	if user.University != "" {
		b.WriteString(fmt.Sprintf("**University:** %s\n", user.University))
	}
	if user.Description != "" {
		b.WriteString(user.Description)
	}
	embed := &discordgo.MessageEmbed{
		Title:       user.Name,
		Description: b.String(),
		Color:       embedColor,
	}
	if user.ProfilePicture != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.ProfilePicture}
	}
	return embed
}

// SuccessEmbed / DangerEmbed are small notification cards.
func SuccessEmbed(text string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Description: text, Color: embedColorSuccess}
}

func DangerEmbed(text string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Description: text, Color: embedColorDanger}
}
