// Package server initializes and runs the registration server: it wires the
// database, object storage, draft session store, and HTTP surface together
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rcnapps/ordinand/internal/logging"
	"github.com/rcnapps/ordinand/internal/server/admins"
	"github.com/rcnapps/ordinand/internal/server/assets"
	"github.com/rcnapps/ordinand/internal/server/config"
	"github.com/rcnapps/ordinand/internal/server/httpapi"
	"github.com/rcnapps/ordinand/internal/server/registrations"
	"github.com/rcnapps/ordinand/internal/server/shared/db"
	"github.com/rcnapps/ordinand/internal/server/wizard"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	drafts              *wizard.Store
	adminService        *admins.Service
	registrationService *registrations.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := assets.NewS3Store(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("bucket init error: %w", err)
	}

	uploader := assets.NewUploader(store, c.PassportMaxBytes, logger)
	drafts := wizard.NewStore(c.SessionTTL, logger)

	as := admins.NewService(rm.Conn(), rm.Admins(), rm.RefreshTokens(), c)
	rs := registrations.NewService(rm.Registrations(), uploader, logger)

	return &App{
		config:              c,
		logger:              logger,
		drafts:              drafts,
		adminService:        as,
		registrationService: rs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	wh := httpapi.NewWizardHandler(app.drafts, app.registrationService, app.config.PaymentURL, app.logger)
	ah := httpapi.NewAdminHandler(app.adminService, app.registrationService, app.logger)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, wh, ah, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.drafts.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
