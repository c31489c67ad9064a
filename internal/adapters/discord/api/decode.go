package api

import (
	"encoding/json"
	"errors"
	"time"

	"test-entitlement-bot/internal/core/domain"
)

var errNotObject = errors.New("response is not a JSON object")

// decodeEntitlement keeps the body as received and fills the known fields
// that decode cleanly. Only a body that is not a JSON object is an error.
func decodeEntitlement(body []byte) (*domain.Entitlement, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}

	ent := &domain.Entitlement{
		ID:            stringField(fields["id"]),
		SkuID:         stringField(fields["sku_id"]),
		ApplicationID: stringField(fields["application_id"]),
		UserID:        stringField(fields["user_id"]),
		GuildID:       stringField(fields["guild_id"]),
		StartsAt:      timeField(fields["starts_at"]),
		EndsAt:        timeField(fields["ends_at"]),
		Raw:           json.RawMessage(body),
	}
	_ = json.Unmarshal(fields["type"], &ent.Type)
	_ = json.Unmarshal(fields["deleted"], &ent.Deleted)

	return ent, nil
}

// stringField accepts snowflakes sent either as strings or as bare numbers.
func stringField(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}

func timeField(raw json.RawMessage) *time.Time {
	var t time.Time
	if json.Unmarshal(raw, &t) != nil || t.IsZero() {
		return nil
	}
	return &t
}
