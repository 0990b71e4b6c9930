package main

import (
	"context"
	"log"
	"os"

	"mealbot/internal/adapters/callback"
	"mealbot/internal/adapters/discord"
	"mealbot/internal/application"
	"mealbot/internal/config"
	"mealbot/internal/infrastructure/analytics"
	"mealbot/internal/infrastructure/api"
	"mealbot/internal/infrastructure/database"
	"mealbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize the database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	sessionStore := database.NewSessionStore(pool)
	pendingStore := database.NewPendingJoinStore(pool)

	// A rejected token evicts the stored session so the next command
	// asks the user to log in again.
	client := api.NewClient(cfg.APIBaseURL, func(discordUserID string) {
		if err := sessionStore.ClearToken(context.Background(), discordUserID); err != nil {
			log.Printf("⚠️ Failed to evict session for %s: %v", discordUserID, err)
		}
	})
	userAPI := api.NewUserService(client)
	mealAPI := api.NewMealService(client)
	eventAPI := api.NewEventService(client)
	paymentAPI := api.NewPaymentService(client)

	tracker := analytics.NewPostHog(cfg.PostHogKey, cfg.PostHogEndpoint)
	defer tracker.Close()

	sessions := application.NewSessionService(sessionStore, userAPI, tracker)
	meals := application.NewMealService(mealAPI, sessions, tracker)
	events := application.NewEventService(eventAPI, sessions)
	payments := application.NewPaymentService(paymentAPI, eventAPI, mealAPI, pendingStore, sessions, events, tracker, cfg.CheckoutPageURL)
	wizard := application.NewWizardService(mealAPI, eventAPI, payments, sessions, tracker)
	participants := application.NewParticipantService(eventAPI, sessions)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	handler := discord.NewHandler(sessions, meals, events, wizard, payments, participants, translator)

	bot, err := discord.NewBot(cfg, handler)
	if err != nil {
		log.Fatalf("❌ Failed to create the bot: %v", err)
	}

	notifier := discord.NewNotifier(bot.Session(), handler, cfg.DefaultLocale)
	callbacks := callback.NewServer(cfg.CallbackAddr, payments, notifier)
	go func() {
		if err := callbacks.Start(); err != nil {
			log.Printf("❌ Callback listener stopped: %v", err)
		}
	}()
	defer func() {
		if err := callbacks.Shutdown(context.Background()); err != nil {
			log.Printf("⚠️ Callback listener shutdown: %v", err)
		}
	}()

	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
