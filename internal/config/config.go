package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	ApplicationID  string
	SkuID          string
	APIBaseURL     string
	DiscordGuildID string
	MetricsAddr    string
	LogLevel       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := secretOrEnv("discord_token", "DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	appID := secretOrEnv("application_id", "APPLICATION_ID")
	if appID == "" {
		return nil, fmt.Errorf("APPLICATION_ID is not set (via secret or env var)")
	}

	cfg := &Config{
		Token:          token,
		ApplicationID:  appID,
		SkuID:          envString("ENTITLEMENT_SKU_ID", ""),
		APIBaseURL:     envString("DISCORD_API_BASE_URL", strings.TrimSuffix(discordgo.EndpointAPI, "/")),
		DiscordGuildID: envString("DISCORD_GUILD_ID", ""),
		MetricsAddr:    envString("METRICS_ADDR", ":2112"),
		LogLevel:       strings.ToLower(envString("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

var secretsDir = "/run/secrets/"

func secretOrEnv(secret, env string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(env)
}

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
