package middleware

import (
	"net/http"

	"jobradar/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// Identity resolves the caller from the X-User-ID header. Authentication
// itself lives outside this service; routes only need a stable user id.
type Identity struct{}

func NewIdentity() *Identity {
	return &Identity{}
}

// RequireUser aborts with 401 when no valid user id is resolvable.
func (m *Identity) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid user identity")
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
