package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/service/auth"
	"github.com/febdev/catalog-api/internal/store"
)

// seedPassword is the plaintext password assigned to every seeded account.
// Sample data only; never use in a real deployment.
const seedPassword = "123456"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func int64Ptr(n int64) *int64 { return &n }

// seedDatabase populates the catalog with a small fixed data set: two
// products and two users (one admin). Seeding is idempotent for users
// (accounts that already exist are skipped) and runs in a single
// transaction so a partial seed never persists.
func (app *application) seedDatabase(ctx context.Context) error {
	app.logger.Info("Seeding database with sample data")

	hasher := auth.NewBcryptHasher()

	drafts := []*domain.ProductDraft{
		{
			Name:        strPtr("Product 1"),
			Description: strPtr("This is product 1"),
			Price:       floatPtr(479.99),
			Stock:       int64Ptr(15),
		},
		{
			Name:  strPtr("Product 2"),
			Price: floatPtr(15.99),
			Stock: int64Ptr(24),
		},
	}

	users := []struct {
		name    string
		email   string
		isAdmin bool
	}{
		{name: "User 1", email: "user1@email.com", isAdmin: false},
		{name: "Admin", email: "admin@email.com", isAdmin: true},
	}

	err := store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		productStore := app.productStore.WithTx(tx)
		userStore := app.userStore.WithTx(tx)

		for _, draft := range drafts {
			product, err := productStore.Create(ctx, draft)
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", *draft.Name, err)
			}
			app.logger.Info("seeded product",
				"id", product.ID,
				"name", product.Name)
		}

		for _, u := range users {
			user, err := domain.NewUser(u.name, u.email, seedPassword)
			if err != nil {
				return fmt.Errorf("invalid seed user %q: %w", u.email, err)
			}
			user.IsAdmin = u.isAdmin

			hashed, err := hasher.Hash(user.Password)
			if err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			user.HashedPassword = hashed
			user.Password = ""

			if err := userStore.Create(ctx, user); err != nil {
				if errors.Is(err, store.ErrEmailExists) {
					app.logger.Info("seed user already exists, skipping",
						"email", u.email)
					continue
				}
				return fmt.Errorf("failed to seed user %q: %w", u.email, err)
			}
			app.logger.Info("seeded user",
				"id", user.ID,
				"email", user.Email,
				"is_admin", user.IsAdmin)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	app.logger.Info("Database seeded successfully")
	return nil
}
