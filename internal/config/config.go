package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token           string
	GuildID         string
	DatabaseURL     string
	MigrationsPath  string
	APIBaseURL      string
	CheckoutPageURL string
	CallbackAddr    string
	PostHogKey      string
	PostHogEndpoint string
	DefaultLocale   string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:           os.Getenv("TOKEN"),
		GuildID:         os.Getenv("GUILD_ID"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		APIBaseURL:      os.Getenv("API_BASE_URL"),
		CheckoutPageURL: os.Getenv("CHECKOUT_PAGE_URL"),
		CallbackAddr:    os.Getenv("CALLBACK_ADDR"),
		PostHogKey:      os.Getenv("POSTHOG_KEY"),
		PostHogEndpoint: os.Getenv("POSTHOG_ENDPOINT"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/mealbot?sslmode=disable"
	}
	if err := validURL("DATABASE_URL", c.DatabaseURL); err != nil {
		return err
	}

	if strings.TrimSpace(c.APIBaseURL) == "" {
		c.APIBaseURL = "http://localhost:8000"
	}
	if err := validURL("API_BASE_URL", c.APIBaseURL); err != nil {
		return err
	}

	if strings.TrimSpace(c.CheckoutPageURL) == "" {
		return fmt.Errorf("config: CHECKOUT_PAGE_URL is required (the hosted checkout page)")
	}
	if err := validURL("CHECKOUT_PAGE_URL", c.CheckoutPageURL); err != nil {
		return err
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}
	if strings.TrimSpace(c.CallbackAddr) == "" {
		c.CallbackAddr = ":8937"
	}
	if strings.TrimSpace(c.PostHogEndpoint) == "" {
		c.PostHogEndpoint = "https://us.i.posthog.com"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	return nil
}

func validURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalid (%q): missing scheme or host", name, raw)
	}
	return nil
}
