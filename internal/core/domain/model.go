package domain

import (
	"encoding/json"
	"time"
)

// OwnerType identifies who owns an entitlement.
type OwnerType int

const (
	OwnerTypeGuild OwnerType = 1
	OwnerTypeUser  OwnerType = 2
)

func (t OwnerType) Valid() bool {
	return t == OwnerTypeGuild || t == OwnerTypeUser
}

func (t OwnerType) String() string {
	switch t {
	case OwnerTypeGuild:
		return "guild"
	case OwnerTypeUser:
		return "user"
	default:
		return "unknown"
	}
}

// Entitlement is the record returned by the remote platform. Raw holds the
// response body exactly as received.
type Entitlement struct {
	ID            string     `json:"id"`
	SkuID         string     `json:"sku_id"`
	ApplicationID string     `json:"application_id"`
	UserID        string     `json:"user_id,omitempty"`
	GuildID       string     `json:"guild_id,omitempty"`
	Type          int        `json:"type"`
	Deleted       bool       `json:"deleted"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type EntitlementRequest struct {
	SkuID     string    `json:"sku_id"`
	OwnerID   string    `json:"owner_id"`
	OwnerType OwnerType `json:"owner_type"`
}

type GuildRef struct {
	ID   string
	Name string
}
