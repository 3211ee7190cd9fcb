// Package server initializes and runs the TravelPath server: object
// storage, repositories, the planner, and the two protocol fronts, with
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/travelpath/server/internal/logging"
	"github.com/travelpath/server/internal/server/config"
	gs "github.com/travelpath/server/internal/server/grpc"
	"github.com/travelpath/server/internal/server/places"
	"github.com/travelpath/server/internal/server/planner"
	"github.com/travelpath/server/internal/server/repositories/repomanager"
	"github.com/travelpath/server/internal/server/rest"
	"github.com/travelpath/server/internal/server/services"
	"github.com/travelpath/server/internal/server/storage"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	photoService *services.PhotoService
	tripService  *services.TripService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	var db *sql.DB
	var rm repomanager.RepositoryManager

	if c.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		pm, err := repomanager.NewPostgresRepositoryManager()
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := pm.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
		rm = pm
	} else {
		rm = repomanager.NewMemoryRepositoryManager()
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		BaseEndpoint: c.S3BaseEndpoint,
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	catalog := places.NewClient(c.PlacesEndpoint, c.PlacesAPIKey)

	tunables := planner.DefaultTunables()
	tunables.DailyTimeBudget = c.DailyTimeBudget
	tunables.MinViableCandidates = c.MinViableCandidates

	ps := services.NewPhotoService(db, rm, store, c)
	ts := services.NewTripService(db, rm, catalog, planner.New(tunables))

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		photoService: ps,
		tripService:  ts,
	}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.photoService, app.config.SecretKey)
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	ph := rest.NewPhotoHandler(app.photoService, app.config.MaxPhotoBytes)
	th := rest.NewTripHandler(app.tripService)
	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, ph, th, app.config.SecretKey)

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
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}
}
