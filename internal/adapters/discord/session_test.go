package discord

import (
	"testing"

	"test-entitlement-bot/internal/config"

	"github.com/bwmarrin/discordgo"
)

func TestNewSession(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"standard format", "MTk.test.token"},
		{"short token", "test"},
		{"empty", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session, err := NewSession(&config.Config{Token: tc.token})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if session.Identify.Intents != discordgo.IntentsGuilds {
				t.Errorf("Expected intents %d, got %d", discordgo.IntentsGuilds, session.Identify.Intents)
			}
			if session.Token != "Bot "+tc.token {
				t.Errorf("Expected bot token prefix, got %q", session.Token)
			}
		})
	}
}
