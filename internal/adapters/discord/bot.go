package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"mealbot/internal/config"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot around an already-wired Handler.
func NewBot(cfg *config.Config, handler *Handler) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot, nil
}

// Session exposes the underlying Discord session for out-of-band
// notifications (checkout/onboarding returns).
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "login":
			b.handler.HandleLoginCommand(s, i)
		case "signup":
			b.handler.HandleSignupCommand(s, i)
		case "logout":
			b.handler.HandleLogout(s, i)
		case "profile":
			b.handler.HandleProfile(s, i)
		case "meals":
			b.handler.HandleMeals(s, i)
		case "events":
			b.handler.HandleEvents(s, i)
		case "host":
			b.handler.HandleHost(s, i)
		case "payments":
			b.handler.HandlePayments(s, i)
		}

	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		switch {
		case customID == "profile_edit":
			b.handler.handleProfileEdit(s, i)
		case strings.HasPrefix(customID, "wiz_"):
			b.handler.HandleWizardComponent(s, i, customID)
		case strings.HasPrefix(customID, "tab_"):
			b.handler.HandleListingTab(s, i, strings.TrimPrefix(customID, "tab_"))
		case strings.HasPrefix(customID, "ev_"):
			b.handler.HandleEventAction(s, i, customID)
		case strings.HasPrefix(customID, "accept_"):
			b.handler.HandleAccept(s, i, strings.TrimPrefix(customID, "accept_"))
		case strings.HasPrefix(customID, "meal_"):
			b.handler.HandleMealComponent(s, i, customID)
		case strings.HasPrefix(customID, "pay_"):
			b.handler.HandlePaymentComponent(s, i, customID)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	commands := []*discordgo.ApplicationCommand{
		{Name: "login", Description: "Log in to your marketplace account"},
		{Name: "signup", Description: "Create a marketplace account"},
		{Name: "logout", Description: "Log out"},
		{Name: "profile", Description: "Show a profile", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "user", Description: "User id (defaults to you)"},
		}},
		{Name: "meals", Description: "Your meals"},
		{Name: "events", Description: "Browse events"},
		{Name: "host", Description: "Host a new event"},
		{Name: "payments", Description: "Your payment account"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
