package commands

import (
	"log/slog"

	"test-entitlement-bot/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

// WithAdmin returns a middleware that turns away members without the
// Administrator permission before the wrapped handler runs.
func WithAdmin(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next CommandHandler) CommandHandler {
		return func(s DiscordSession, i *discordgo.InteractionCreate) {
			if i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
				next(s, i)
				return
			}

			name := i.ApplicationCommandData().Name
			logger.Warn("Rejected command from non-admin", "command", name, "guild_id", i.GuildID)
			if err := respond(s, i, formatting.MsgAdminRequired, true); err != nil {
				logger.Error("Failed to send admin notice", "command", name, "error", err)
			}
		}
	}
}
