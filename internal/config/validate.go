package config

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	minSnowflakeLength = 17
	maxSnowflakeLength = 20
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every field and returns all failures at once, joined with
// errors.Join.
//
// The SKU is only checked for presence; its format is owned by Discord.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := validateSnowflake("APPLICATION_ID", c.ApplicationID, true); err != nil {
		errs = append(errs, err)
	}

	if c.SkuID == "" {
		errs = append(errs, fmt.Errorf("ENTITLEMENT_SKU_ID is required but not set"))
	}

	if err := validateSnowflake("DISCORD_GUILD_ID", c.DiscordGuildID, false); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateAPIBaseURL(); err != nil {
		errs = append(errs, err)
	}

	if c.MetricsAddr == "" {
		errs = append(errs, fmt.Errorf("METRICS_ADDR cannot be empty"))
	}

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateAPIBaseURL() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("DISCORD_API_BASE_URL must be an absolute http(s) URL, got %q", c.APIBaseURL)
	}
	return nil
}

// validateSnowflake checks a Discord ID: decimal digits, 17-20 long.
func validateSnowflake(fieldName, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%s is required but not set", fieldName)
		}
		return nil
	}

	if len(value) < minSnowflakeLength || len(value) > maxSnowflakeLength {
		return fmt.Errorf(
			"%s must be %d-%d digits, got %d characters",
			fieldName, minSnowflakeLength, maxSnowflakeLength, len(value),
		)
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s must contain only digits, got %q", fieldName, value)
		}
	}

	return nil
}
