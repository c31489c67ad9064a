package discord

import (
	"fmt"

	"test-entitlement-bot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// NewSession builds the gateway session. Slash-command interactions arrive
// without message intents, so only guild events are requested.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}
