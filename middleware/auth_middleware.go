package middleware

import (
	"errors"

	"github.com/AviAkaMe/Studio-App-Code/policy"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Protected rejects requests without a valid bearer token. Claims are
// trusted for the token's lifetime: a role change only takes effect
// once the user logs in again and receives a fresh token.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired JWT"})
}

// Identity extracts the caller's id and role from the verified token
// stored by Protected.
func Identity(c *fiber.Ctx) (uuid.UUID, policy.Role, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, "", errors.New("missing token in request context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errors.New("unexpected claims type")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", errors.New("malformed user_id claim")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return uuid.Nil, "", errors.New("missing role claim")
	}
	return userID, policy.Role(role), nil
}
