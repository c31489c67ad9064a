package ports

import (
	"context"

	"test-entitlement-bot/internal/core/domain"
)

type EntitlementClient interface {
	CreateTestEntitlement(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Entitlement, error)
	DeleteTestEntitlement(ctx context.Context, entitlementID string) error
}

// CommandContext is the chat context a command was invoked from.
type CommandContext interface {
	Reply(text string) error
	ResolveGuild() (domain.GuildRef, error)
}
