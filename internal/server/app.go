// Package server initializes and runs the authentication server: it
// builds the group parameters, the in-memory stores, the protocol
// service, and the gRPC endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/zkauth/internal/logging"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	"github.com/dmitrijs2005/zkauth/internal/server/services"
	"github.com/dmitrijs2005/zkauth/internal/server/sessions"
	"github.com/dmitrijs2005/zkauth/internal/zkp"

	gs "github.com/dmitrijs2005/zkauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
	sessionRepo *sessions.InMemoryRepository
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	params, err := zkp.NamedParams(c.GroupProfile)
	if err != nil {
		return nil, fmt.Errorf("group init error: %w", err)
	}

	regRepo := registrations.NewInMemoryRepository()
	sessRepo := sessions.NewInMemoryRepository()

	as, err := services.NewAuthService(params, regRepo, sessRepo, c)
	if err != nil {
		return nil, fmt.Errorf("auth service init error: %w", err)
	}

	return &App{config: c, logger: logger, authService: as, sessionRepo: sessRepo}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "profile", app.config.GroupProfile)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.sessionRepo.Run(ctx, app.config.SessionReapInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
