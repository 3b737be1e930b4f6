package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Identity is the local user's self-asserted chat identity.
// Cached on disk until logout; the directory claim outlives it.
type Identity struct {
	DisplayName   string `json:"displayName"`
	AvatarRef     string `json:"avatarRef,omitempty"`
	SourceAddress string `json:"sourceAddress"`
}

// NameDirectoryEntry is one row of the shared uniqueness registry.
// Existence of a row constitutes a claim on the name.
type NameDirectoryEntry struct {
	DisplayName   string `json:"displayName"`
	SourceAddress string `json:"sourceAddress"`
}

// NameRequest carries a display name candidate through validation.
type NameRequest struct {
	DisplayName string `validate:"required,min=1,max=32"`
}

// ValidateName checks a display name after trimming surrounding whitespace.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := validate.Struct(NameRequest{DisplayName: trimmed}); err != nil {
		return "", err
	}
	return trimmed, nil
}

// Roster knows which display names carry a verified-admin badge.
// Purely a presentation hint, no privileges are attached.
type Roster struct {
	admins map[string]struct{}
}

func NewRoster(adminNames []string) Roster {
	admins := make(map[string]struct{}, len(adminNames))
	for _, name := range adminNames {
		admins[name] = struct{}{}
	}
	return Roster{admins: admins}
}

func (r Roster) IsAdmin(displayName string) bool {
	_, ok := r.admins[displayName]
	return ok
}
