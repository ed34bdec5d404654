package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/domain"
)

// allowedSessionKeys are the only keys the session endpoints expose. The
// per-input cache entries stay server-internal.
var allowedSessionKeys = map[string]bool{
	domain.SessionKeyAnalysis:  true,
	domain.SessionKeyCharacter: true,
	domain.SessionKeyResults:   true,
}

// SessionHandler exposes the stage hand-off slots of the caller's session.
type SessionHandler struct{}

// NewSessionHandler creates a new session handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Get handles GET /api/v1/session/:key.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes the stored JSON document).
func (h *SessionHandler) Get(c *gin.Context) {
	key := c.Param("key")
	if !allowedSessionKeys[key] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown session key"})
		return
	}

	value, ok := middleware.GetStore(c).Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", value)
}

// Put handles PUT /api/v1/session/:key. The body must be a valid JSON
// document; it is stored verbatim. A collision with an existing value is
// resolved by last write wins.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SessionHandler) Put(c *gin.Context) {
	key := c.Param("key")
	if !allowedSessionKeys[key] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown session key"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be valid JSON"})
		return
	}

	middleware.GetStore(c).Set(key, body)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
