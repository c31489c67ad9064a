package commands

import (
	"errors"
	"fmt"

	"test-entitlement-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

var ErrNoGuild = errors.New("command was not invoked in a server and no guild was given")

// interactionContext adapts a deferred slash-command interaction to
// ports.CommandContext.
type interactionContext struct {
	session       DiscordSession
	interaction   *discordgo.InteractionCreate
	guildOverride string
}

func newInteractionContext(s DiscordSession, i *discordgo.InteractionCreate) *interactionContext {
	return &interactionContext{
		session:       s,
		interaction:   i,
		guildOverride: getStringOption(i.ApplicationCommandData().Options, OptGuild),
	}
}

func (c *interactionContext) Reply(text string) error {
	return editResponse(c.session, c.interaction, text)
}

func (c *interactionContext) ResolveGuild() (domain.GuildRef, error) {
	if c.guildOverride != "" {
		g, err := c.session.Guild(c.guildOverride)
		if err != nil {
			return domain.GuildRef{}, fmt.Errorf("look up guild %s: %w", c.guildOverride, err)
		}
		return domain.GuildRef{ID: g.ID, Name: g.Name}, nil
	}

	guildID := c.interaction.GuildID
	if guildID == "" {
		return domain.GuildRef{}, ErrNoGuild
	}

	ref := domain.GuildRef{ID: guildID, Name: guildID}
	if g, err := c.session.Guild(guildID); err == nil && g.Name != "" {
		ref.Name = g.Name
	}
	return ref, nil
}
