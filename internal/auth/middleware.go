package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Only the identity is
// carried; handlers that need the full user load it themselves.
type Principal struct {
	UserID int64
}

// Middleware validates bearer tokens on protected routes.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication. A missing header, a malformed header and a
// failed token verification are all rejected with the same status and
// message so the caller cannot tell which check failed.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized()
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return unauthorized()
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return unauthorized()
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID})
	return c.Next()
}

func unauthorized() error {
	return apperrors.NewUnauthorized("invalid or missing credentials")
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
