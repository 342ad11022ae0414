package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/febdev/catalog-api/internal/config"
	"github.com/febdev/catalog-api/internal/platform/postgres"
	"github.com/febdev/catalog-api/internal/service"
	"github.com/febdev/catalog-api/internal/service/auth"
	"github.com/febdev/catalog-api/internal/store"
)

// application holds every dependency the server needs, constructed once at
// startup and passed explicitly to the components that use it. There is no
// package-level mutable state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	productStore store.ProductStore

	userService    service.UserService
	productService service.ProductService

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication builds the full dependency graph: database connection,
// stores, auth services, and business services.
func newApplication(cfg *config.Config) (*application, error) {
	logger := slog.Default()

	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		// The connection is already open; don't leak it on a failed build.
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	productStore := postgres.NewPostgresProductStore(db, logger)

	hasher := auth.NewBcryptHasher()

	app := &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		productStore:     productStore,
		userService:      service.NewUserService(userStore, hasher, db, logger),
		productService:   service.NewProductService(productStore, userStore, db, logger),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}

	return app, nil
}

// cleanup releases the application's resources. Called on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		} else {
			app.logger.Info("database connection closed")
		}
	}
}
