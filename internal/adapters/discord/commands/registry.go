package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var (
	adminPerms = int64(discordgo.PermissionAdministrator)
	dmAllowed  = false
)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     CmdAddTestEntitlement,
			Description:              "Add a test entitlement to a server",
			DefaultMemberPermissions: &adminPerms,
			DMPermission:             &dmAllowed,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption(OptGuild, "Server ID to grant (defaults to this server)", false),
			},
		},
		{
			Name:                     CmdRemoveTestEntitlement,
			Description:              "Remove a test entitlement from a server",
			DefaultMemberPermissions: &adminPerms,
			DMPermission:             &dmAllowed,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption(OptEntitlementID, "ID of the test entitlement to remove", true),
				stringOption(OptGuild, "Server ID the entitlement belongs to (defaults to this server)", false),
			},
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func RegisterCommands(logger *slog.Logger, session CommandSession, commands []*discordgo.ApplicationCommand, appID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(appID, guildID, cmd)
		if err != nil {
			logger.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		logger.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(logger *slog.Logger, session CommandSession, commands []*discordgo.ApplicationCommand, appID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			logger.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
