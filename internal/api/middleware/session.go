package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/logger"
)

// storeContextKey is the Gin context key the session store is stashed under.
const storeContextKey = "sessionStore"

// Session returns a middleware that resolves the caller's session from a
// cookie, creating a new session on first contact, and injects the
// session-scoped store into the request context.
// Parameters:
//   - manager: session store manager.
//   - cookieName: name of the session cookie.
// Returns:
//   - gin.HandlerFunc: middleware handler.
func Session(manager *cache.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = uuid.New().String()
			// Session cookie only; lifetime is governed by the server-side TTL
			c.SetCookie(cookieName, id, 0, "/", "", false, true)
		}

		c.Set(storeContextKey, manager.Session(id))

		ctx := logger.WithField(c.Request.Context(), logger.FieldSessionID, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetStore extracts the session store from Gin context.
// Parameters:
//   - c: Gin request context.
// Returns:
//   - cache.Store: session-scoped store, or nil outside the middleware.
func GetStore(c *gin.Context) cache.Store {
	if v, exists := c.Get(storeContextKey); exists {
		if store, ok := v.(cache.Store); ok {
			return store
		}
	}
	return nil
}
