package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/quickcart/quickcart-backend/pkg/enums"
)

// Identity is the verified result of resolving a bearer credential: a stable
// externally issued user id and the role it carries.
type Identity struct {
	UserID string
	Role   enums.ActorRole
}

// IsSeller reports whether the identity may mutate the catalog.
func (i Identity) IsSeller() bool {
	return i.Role == enums.RoleSeller
}

// AccessTokenClaims is the typed JWT the identity provider issues.
type AccessTokenClaims struct {
	UserID string          `json:"user_id"`
	Role   enums.ActorRole `json:"role"`
	jwt.RegisteredClaims
}
