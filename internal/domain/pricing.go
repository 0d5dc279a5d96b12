package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Pricing is the canonical price card for a companion. It is stored as a
// single JSON column; parsing happens here at the storage boundary so the
// rest of the code only ever sees the typed struct.
type Pricing struct {
	BasicChatCents   int64 `json:"basic_chat_cents"`
	PremiumChatCents int64 `json:"premium_chat_cents"`
	VideoCallCents   int64 `json:"video_call_cents"`
}

// Value serializes the canonical object form.
func (p Pricing) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan accepts the object form and, for rows written by older clients, a
// double-encoded JSON string. Anything else is rejected so ambiguity never
// reaches the domain model.
func (p *Pricing) Scan(src any) error {
	if src == nil {
		*p = Pricing{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("pricing: unsupported column type %T", src)
	}
	if len(raw) == 0 {
		*p = Pricing{}
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return fmt.Errorf("pricing: decode wrapped string: %w", err)
		}
		raw = []byte(inner)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("pricing: decode: %w", err)
	}
	return nil
}
