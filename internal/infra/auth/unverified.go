package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"directory/internal/domain/entity"
)

// DecodeClaimsUnsafe decodes a JWT payload WITHOUT verifying the signature.
// It exists only so UI code can hint at who is logged in (name on the navbar,
// hiding claim buttons) before any round trip. It must never gate a mutation:
// real authorization is the auth middleware plus the usecase role checks.
func DecodeClaimsUnsafe(token string) (entity.SessionIdentity, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return entity.Anonymous(), false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return entity.Anonymous(), false
	}

	var body struct {
		Sub   string   `json:"sub"`
		Roles []string `json:"roles"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return entity.Anonymous(), false
	}

	userID, err := uuid.Parse(body.Sub)
	if err != nil {
		return entity.Anonymous(), false
	}

	return entity.SessionIdentity{
		UserID:        userID,
		Roles:         entity.RolesFromStrings(body.Roles),
		Authenticated: true,
	}, true
}
