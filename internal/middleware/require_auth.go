package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const callerKey = "caller_id"

func SetCallerID(c *fiber.Ctx, id bson.ObjectID) {
	c.Locals(callerKey, id)
}

// CallerID returns the user id BearerCaller resolved for this request.
func CallerID(c *fiber.Ctx) (bson.ObjectID, bool) {
	id, ok := c.Locals(callerKey).(bson.ObjectID)
	return id, ok && !id.IsZero()
}

// RequireCaller answers 401 to anonymous requests.
func RequireCaller() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CallerID(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}
		return c.Next()
	}
}
