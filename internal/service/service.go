package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/talx-hub/likeboard/internal/api/handlers"
	"github.com/talx-hub/likeboard/internal/dbmanager"
	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/repo"
	"github.com/talx-hub/likeboard/internal/router"
	"github.com/talx-hub/likeboard/internal/service/auth"
	"github.com/talx-hub/likeboard/internal/service/config"
	"github.com/talx-hub/likeboard/internal/service/hasher"
	"github.com/talx-hub/likeboard/internal/service/social"
	jwtauth "github.com/talx-hub/likeboard/internal/utils/auth"
)

const (
	connectTimeout    = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// NewHandler builds the whole request pipeline on top of an opened pool.
func NewHandler(
	cfg *config.Config,
	pool *dbmanager.DBManager,
	log *slog.Logger,
) (http.Handler, error) {
	db, err := pool.GetPool(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get DB pool: %w", err)
	}

	bc, err := hasher.NewBcrypt(cfg.BcryptCost, cfg.HashWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to init password hasher: %w", err)
	}
	issuer := jwtauth.NewIssuer(cfg.JWTSecret)

	usersRepo := repo.NewUserRepository(db, log)
	likesRepo := repo.NewLikeRepository(db, log)

	authService := auth.New(usersRepo, bc, issuer, log)
	socialService := social.New(usersRepo, likesRepo, log)

	rr := router.New(issuer, log)
	rr.SetRouter(&struct {
		*handlers.AuthHandler
		*handlers.UserHandler
		*handlers.HealthHandler
	}{
		AuthHandler:   handlers.NewAuthHandler(authService),
		UserHandler:   handlers.NewUserHandler(socialService),
		HealthHandler: handlers.NewHealthHandler(pool),
	})
	return rr.GetRouter(), nil
}

func initService(
	ctx context.Context, cfg *config.Config, log *slog.Logger,
) (*http.Server, *dbmanager.DBManager, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbManager := dbmanager.New(cfg.DatabaseURL, log).
		Connect(connectCtx).
		Ping(connectCtx).
		ApplyMigrations(connectCtx)
	if err := dbManager.Error(); err != nil {
		dbManager.Close()
		return nil, nil, fmt.Errorf("db connection error: %w", err)
	}

	handler, err := NewHandler(cfg, dbManager, log)
	if err != nil {
		dbManager.Close()
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:              cfg.RunAddr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
	return srv, dbManager, nil
}

// RunServer serves HTTP until ctx is cancelled, then drains in-flight
// requests and closes the pool.
func RunServer(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv, dbManager, err := initService(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init service: %w", err)
	}
	defer dbManager.Close()

	serveErr := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, slog.LevelInfo, "server started",
			slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve error: %w", err)
	case <-ctx.Done():
	}

	log.LogAttrs(context.Background(), slog.LevelInfo, "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.LogAttrs(shutdownCtx, slog.LevelError, "graceful shutdown failed",
			slog.Any(model.KeyLoggerError, err))
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Migrate moves the schema up or, with down set, rolls every migration back.
func Migrate(ctx context.Context, dsn string, down bool, log *slog.Logger) error {
	dbManager := dbmanager.New(dsn, log)
	if down {
		dbManager.RollbackMigrations(ctx)
	} else {
		dbManager.ApplyMigrations(ctx)
	}
	if err := dbManager.Error(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
