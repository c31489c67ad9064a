package commands

import (
	"bytes"
	"context"
	"log/slog"

	"test-entitlement-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type mockDiscordSession struct {
	guildFunc              func(guildID string) (*discordgo.Guild, error)
	interactionRespondFunc func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	responseEditFunc       func(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)

	lastInteractionResponse *discordgo.InteractionResponse
	lastEdit                *discordgo.WebhookEdit
}

func (m *mockDiscordSession) Guild(guildID string, opts ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if m.guildFunc != nil {
		return m.guildFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID, Name: "Guild " + guildID}, nil
}

func (m *mockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, opts ...discordgo.RequestOption) error {
	m.lastInteractionResponse = resp
	if m.interactionRespondFunc != nil {
		return m.interactionRespondFunc(interaction, resp)
	}
	return nil
}

func (m *mockDiscordSession) InteractionResponseEdit(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.lastEdit = edit
	if m.responseEditFunc != nil {
		return m.responseEditFunc(interaction, edit)
	}
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) editedContent() string {
	if m.lastEdit == nil || m.lastEdit.Content == nil {
		return ""
	}
	return *m.lastEdit.Content
}

type mockEntitlementClient struct {
	createFunc func(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Entitlement, error)
	deleteFunc func(ctx context.Context, entitlementID string) error
}

func (m *mockEntitlementClient) CreateTestEntitlement(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Entitlement, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, ownerID, ownerType)
	}
	return &domain.Entitlement{ID: "ent-1", Raw: []byte(`{"id":"ent-1"}`)}, nil
}

func (m *mockEntitlementClient) DeleteTestEntitlement(ctx context.Context, entitlementID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, entitlementID)
	}
	return nil
}

type fakeCommandContext struct {
	guild    domain.GuildRef
	guildErr error
	replyErr error
	replies  []string
}

func (f *fakeCommandContext) Reply(text string) error {
	f.replies = append(f.replies, text)
	return f.replyErr
}

func (f *fakeCommandContext) ResolveGuild() (domain.GuildRef, error) {
	return f.guild, f.guildErr
}

func (f *fakeCommandContext) lastReply() string {
	if len(f.replies) == 0 {
		return ""
	}
	return f.replies[len(f.replies)-1]
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func makeCommandInteraction(guildID, name string, opts map[string]string) *discordgo.InteractionCreate {
	var options []*discordgo.ApplicationCommandInteractionDataOption
	for k, v := range opts {
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name: k, Type: discordgo.ApplicationCommandOptionString, Value: v,
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: guildID,
			Data:    discordgo.ApplicationCommandInteractionData{Name: name, Options: options},
		},
	}
}
