package commands

import (
	"context"
	"log/slog"

	"test-entitlement-bot/internal/adapters/discord/formatting"
	"test-entitlement-bot/internal/adapters/metrics"
	"test-entitlement-bot/internal/core/domain"
	"test-entitlement-bot/internal/core/ports"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdAddTestEntitlement    = "add_test_entitlement"
	CmdRemoveTestEntitlement = "remove_test_entitlement"

	OptGuild         = "guild"
	OptEntitlementID = "entitlement_id"
)

type BotHandler struct {
	Entitlements ports.EntitlementClient
	Logger       *slog.Logger

	// BaseContext, if set, returns the context remote calls run under.
	// Cancelling it aborts requests still in flight.
	BaseContext func() context.Context
}

func NewBotHandler(client ports.EntitlementClient, logger *slog.Logger) *BotHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BotHandler{Entitlements: client, Logger: logger}
}

func (h *BotHandler) ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	h.Logger.Info("Test entitlement bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) AddTestEntitlement(s DiscordSession, i *discordgo.InteractionCreate) {
	if err := deferResponse(s, i); err != nil {
		h.Logger.Error("Failed to acknowledge interaction", "command", CmdAddTestEntitlement, "error", err)
		return
	}

	h.HandleAddEntitlement(h.baseContext(), newInteractionContext(s, i))
}

func (h *BotHandler) RemoveTestEntitlement(s DiscordSession, i *discordgo.InteractionCreate) {
	if err := deferResponse(s, i); err != nil {
		h.Logger.Error("Failed to acknowledge interaction", "command", CmdRemoveTestEntitlement, "error", err)
		return
	}

	entitlementID := getStringOption(i.ApplicationCommandData().Options, OptEntitlementID)
	h.HandleRemoveEntitlement(h.baseContext(), newInteractionContext(s, i), entitlementID)
}

// HandleAddEntitlement grants the configured SKU to the resolved guild.
func (h *BotHandler) HandleAddEntitlement(ctx context.Context, cc ports.CommandContext) {
	guild, ok := h.resolveGuild(cc, CmdAddTestEntitlement)
	if !ok {
		return
	}

	ent, err := h.Entitlements.CreateTestEntitlement(ctx, guild.ID, domain.OwnerTypeGuild)
	if err != nil {
		h.Logger.Error("Failed to create test entitlement", "guild_id", guild.ID, "guild_name", guild.Name, "error", err)
		h.reply(cc, formatting.MsgEntitlementCreateFailed(guild.Name))
		recordResult(CmdAddTestEntitlement, metrics.ResultFailure)
		return
	}

	h.Logger.Info("Created test entitlement", "guild_id", guild.ID, "guild_name", guild.Name, "entitlement_id", ent.ID)
	h.reply(cc, formatting.MsgEntitlementCreated(guild.Name, ent))
	recordResult(CmdAddTestEntitlement, metrics.ResultSuccess)
}

// HandleRemoveEntitlement deletes a previously created test entitlement.
func (h *BotHandler) HandleRemoveEntitlement(ctx context.Context, cc ports.CommandContext, entitlementID string) {
	if entitlementID == "" {
		h.reply(cc, formatting.MsgEntitlementIDRequired)
		recordResult(CmdRemoveTestEntitlement, metrics.ResultInvalid)
		return
	}

	guild, ok := h.resolveGuild(cc, CmdRemoveTestEntitlement)
	if !ok {
		return
	}

	if err := h.Entitlements.DeleteTestEntitlement(ctx, entitlementID); err != nil {
		h.Logger.Error("Failed to remove test entitlement", "guild_id", guild.ID, "guild_name", guild.Name, "entitlement_id", entitlementID, "error", err)
		h.reply(cc, formatting.MsgEntitlementRemoveFailed(guild.Name))
		recordResult(CmdRemoveTestEntitlement, metrics.ResultFailure)
		return
	}

	h.Logger.Info("Removed test entitlement", "guild_id", guild.ID, "guild_name", guild.Name, "entitlement_id", entitlementID)
	h.reply(cc, formatting.MsgEntitlementRemoved(guild.Name))
	recordResult(CmdRemoveTestEntitlement, metrics.ResultSuccess)
}

func (h *BotHandler) resolveGuild(cc ports.CommandContext, command string) (domain.GuildRef, bool) {
	guild, err := cc.ResolveGuild()
	if err != nil {
		h.Logger.Warn("Failed to resolve target guild", "command", command, "error", err)
		h.reply(cc, formatting.MsgGuildUnresolved)
		recordResult(command, metrics.ResultInvalid)
		return domain.GuildRef{}, false
	}
	return guild, true
}

func (h *BotHandler) baseContext() context.Context {
	if h.BaseContext == nil {
		return context.Background()
	}
	return h.BaseContext()
}

func (h *BotHandler) reply(cc ports.CommandContext, msg string) {
	if err := cc.Reply(msg); err != nil {
		h.Logger.Error("Failed to send reply", "error", err)
	}
}

func recordResult(command, result string) {
	metrics.EntitlementCommands.WithLabelValues(command, result).Inc()
}
