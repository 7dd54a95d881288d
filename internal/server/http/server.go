// Package http exposes the service over HTTP: a gin router with the auth
// endpoints, the user CRUD endpoints, and the bearer-token gate in front of
// the mutating routes.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"user-service/internal/logging"
	"user-service/internal/server/admins"
	"user-service/internal/server/users"
)

type Server struct {
	address string
	logger  logging.Logger
	admins  *admins.Service
	users   *users.Service
}

func NewServer(address string, l logging.Logger, as *admins.Service, us *users.Service) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		admins:  as,
		users:   us,
	}
}

// Router builds the gin engine with all routes registered. Separate from Run
// so tests can drive the handlers through httptest without a listener.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.requestLogger())

	router.POST("/auth/login", s.login)
	router.GET("/auth/verify", s.verifyToken)

	// public reads, no gate
	router.GET("/users", s.listUsers)
	router.GET("/users/:id", s.getUser)

	// mutations pass the gate before touching the store
	protected := router.Group("/users")
	protected.Use(s.requireAuth())
	protected.POST("", s.createUser)
	protected.PUT("/:id", s.updateUser)
	protected.DELETE("/:id", s.deleteUser)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "auth": "enabled"})
	})

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
