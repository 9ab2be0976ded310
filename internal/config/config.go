package config

import (
	"log"
	"os"
)

const (
	defaultDBPath         = "./quoting.db"
	defaultPort           = "8080"
	defaultHubSpotBaseURL = "https://api.hubapi.com"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AdminEmail     string
	AdminPassword  string
	SessionSecret  string
	DBPath         string
	Port           string
	Env            string
	HubSpotToken   string
	HubSpotBaseURL string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DBPath:         os.Getenv("DB_PATH"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("APP_ENV"),
		HubSpotToken:   os.Getenv("HUBSPOT_TOKEN"),
		HubSpotBaseURL: os.Getenv("HUBSPOT_BASE_URL"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.HubSpotBaseURL == "" {
		cfg.HubSpotBaseURL = defaultHubSpotBaseURL
	}

	if cfg.AdminEmail == "" {
		log.Print("warning: ADMIN_EMAIL is not set")
	}
	if cfg.AdminPassword == "" {
		log.Print("warning: ADMIN_PASSWORD is not set")
	}
	if cfg.SessionSecret == "" {
		log.Print("warning: SESSION_SECRET is not set")
	}
	if cfg.HubSpotToken == "" {
		log.Print("warning: HUBSPOT_TOKEN is not set; CRM sync will be disabled")
	}

	return cfg
}

// IsDev reports whether the app runs in the local development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}
