package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"user-service/internal/common"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}

// login verifies admin credentials and issues a bearer token.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, expiresAt, err := s.admins.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			// signing failure; unreachable with a valid secret
			s.logger.Error(c.Request.Context(), "token generation failed", "request_id", c.GetString(requestIDKey))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: expiresAt.Format(time.RFC3339),
	})
}

// verifyToken reports the claims of a presented bearer token.
func (s *Server) verifyToken(c *gin.Context) {
	claims, err := s.claimsFromRequest(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, claims)
}
