package domain

// Redaction reasons for a sensitive field. The consuming client renders a
// different call-to-action per reason, so a plain hidden flag is not enough.
const (
	RedactRequiresAuth    = "REQUIRES_AUTH"
	RedactRequiresUpgrade = "REQUIRES_UPGRADE"
	RedactNotPermitted    = "NOT_PERMITTED"
)

// ContactField is a three-state sensitive field: disclosed with a value, or
// redacted with a reason.
type ContactField struct {
	Disclosed bool   `json:"disclosed"`
	Value     string `json:"value,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func DisclosedContact(value string) ContactField {
	return ContactField{Disclosed: true, Value: value}
}

func RedactedContact(reason string) ContactField {
	return ContactField{Reason: reason}
}
