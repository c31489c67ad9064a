package formatting

import (
	"fmt"

	"test-entitlement-bot/internal/core/domain"
)

const (
	MsgAdminRequired         = "You need Administrator permissions to use this command."
	MsgEntitlementIDRequired = "Entitlement ID is required."
	MsgGuildUnresolved       = "Could not resolve the target server."
)

func MsgEntitlementCreated(guildName string, ent *domain.Entitlement) string {
	return fmt.Sprintf("Test entitlement created for %s: %s", guildName, ent.Raw)
}

func MsgEntitlementCreateFailed(guildName string) string {
	return fmt.Sprintf("Failed to create test entitlement for %s.", guildName)
}

func MsgEntitlementRemoved(guildName string) string {
	return fmt.Sprintf("Test entitlement removed for %s.", guildName)
}

func MsgEntitlementRemoveFailed(guildName string) string {
	return fmt.Sprintf("Failed to remove test entitlement for %s.", guildName)
}
