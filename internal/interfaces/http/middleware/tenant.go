package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nivas/backend/internal/interfaces/http/dto"
)

// SocietyIDKey is the context key carrying the parsed society scope
const SocietyIDKey = "society_id"

// RequireSocietyScope rejects sessions that carry no society binding.
// Resident and admin tokens always carry one; developer tokens never do,
// so developer sessions cannot reach tenant-scoped routes at all.
func RequireSocietyScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		societyID, err := claims.SocietyUUID()
		if err != nil || societyID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Session is not bound to a society"))
			return
		}

		c.Set(SocietyIDKey, societyID)
		c.Next()
	}
}

// GetSocietyID retrieves the society scope set by RequireSocietyScope
func GetSocietyID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(SocietyIDKey); exists {
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}
