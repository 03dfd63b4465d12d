package domain

import "strings"

// unknownName is the placeholder shown when a user exposes no usable name.
const unknownName = "Unknown"

// UserInfo carries the optional name fields the chat platform exposes for
// a user. Absent fields are empty strings.
type UserInfo struct {
	FirstName string
	LastName  string
	Username  string
}

// DisplayName resolves a non-empty display name for the user: trimmed
// "first last" when either part is present, then "@username", then a
// literal placeholder.
func (u UserInfo) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{u.FirstName, u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if full := strings.Join(parts, " "); full != "" {
		return full
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return unknownName
}
