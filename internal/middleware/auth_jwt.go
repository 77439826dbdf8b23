package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CallerClaims is the token body minted for feed users. uid wins over sub.
type CallerClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

func (cl CallerClaims) callerID() (bson.ObjectID, error) {
	id := cl.UID
	if id == "" {
		id = cl.Subject
	}
	return bson.ObjectIDFromHex(id)
}

// BearerCaller resolves an HS256 bearer token to the caller's user id.
// Requests without a token pass through anonymous; a bad token, or one
// whose uid is not a user ObjectID, is answered with 401.
func BearerCaller(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
			return c.Next()
		}

		var claims CallerClaims
		token, err := jwt.ParseWithClaims(
			strings.TrimSpace(auth[7:]),
			&claims,
			func(*jwt.Token) (any, error) { return key, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		id, err := claims.callerID()
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "token does not name a user")
		}
		SetCallerID(c, id)
		return c.Next()
	}
}
