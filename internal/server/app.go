// Package server initializes and runs the main application server. It seeds
// the credential store, wires services to the HTTP transport, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"user-service/internal/logging"
	"user-service/internal/server/admins"
	"user-service/internal/server/config"
	"user-service/internal/server/users"

	hs "user-service/internal/server/http"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	adminService *admins.Service
	userService  *users.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	adminRepo, err := admins.NewSeededRepository(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	as := admins.NewService(adminRepo, cfg)
	us := users.NewService(users.NewInMemoryRepository())

	return &App{config: cfg, logger: logger, adminService: as, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// warnInsecureDefaults makes the demo fallbacks loud. The service still
// starts, matching the original deployment, but operators are told exactly
// what to override.
func (app *App) warnInsecureDefaults(ctx context.Context) {
	if app.config.SecretKey == config.DefaultSecretKey {
		app.logger.Warn(ctx, "JWT secret is the development default; set JWT_SECRET before exposing this service")
	}
	if app.config.AdminPassword == config.DefaultAdminPassword {
		app.logger.Warn(ctx, "admin password is the development default; set ADMIN_PASSWORD before exposing this service")
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewServer(app.config.Address, app.logger, app.adminService, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "admin", app.config.AdminUsername)

	app.warnInsecureDefaults(ctx)
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
