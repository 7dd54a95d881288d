package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-service/internal/common"
	"user-service/internal/server/auth"
)

const (
	claimsKey    = "authClaims"
	requestIDKey = "requestID"
)

// requireAuth is the gate in front of mutating routes. A missing header, a
// non-bearer scheme, and an invalid or expired token are all rejected with
// the same response; callers cannot tell which step failed.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := s.claimsFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required for this operation"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// claimsFromRequest extracts and validates the bearer token from the
// Authorization header.
func (s *Server) claimsFromRequest(c *gin.Context) (*auth.Claims, error) {
	const prefix = "Bearer "

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return nil, common.ErrorInvalidToken
	}

	return s.admins.VerifyToken(strings.TrimPrefix(header, prefix))
}

// requestID tags every request with a short random id for log correlation
// and echoes it in the X-Request-Id response header.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := common.MakeRandHexString(8); err == nil {
			c.Set(requestIDKey, id)
			c.Writer.Header().Set("X-Request-Id", id)
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		s.logger.Info(c.Request.Context(), "request handled",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
