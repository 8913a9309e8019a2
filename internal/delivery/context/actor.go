package context

import "github.com/labstack/echo/v4"

// KeyActorID is the key for storing the authenticated user's ID in context.
const KeyActorID ContextKey = "actor_id"

// SetActorID stores the authenticated user's ID in echo.Context.
func SetActorID(c echo.Context, userID int64) {
	c.Set(string(KeyActorID), userID)
}

// GetActorID extracts the authenticated user's ID from echo.Context.
// The second return is false when no authenticated user is attached.
func GetActorID(c echo.Context) (int64, bool) {
	val := c.Get(string(KeyActorID))
	id, ok := val.(int64)

	return id, ok
}
