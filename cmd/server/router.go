package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/febdev/catalog-api/internal/api"
	apiMiddleware "github.com/febdev/catalog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userService,
		app.jwtService,
		app.passwordVerifier,
	)
	productHandler := api.NewProductHandler(app.productService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// updateGuard isolates the policy decision for the update endpoint:
	// the source API left PUT/PATCH unguarded, so the guard is off unless
	// configured otherwise.
	updateGuard := func(next http.Handler) http.Handler { return next }
	if app.config.Auth.ProtectProductUpdate {
		updateGuard = authMiddleware.Authenticate
	}

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Product endpoints
	r.Get("/products", productHandler.ListProducts)
	r.Get("/products/{id}", productHandler.GetProduct)

	r.Group(func(r chi.Router) {
		r.Use(updateGuard)
		r.Put("/products/{id}", productHandler.UpdateProduct)
		r.Patch("/products/{id}", productHandler.UpdateProduct)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/products", productHandler.CreateProduct)
		r.Delete("/products/{id}", productHandler.DeleteProduct)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
