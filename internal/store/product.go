package store

import (
	"context"
	"database/sql"

	"github.com/febdev/catalog-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// List retrieves all products in the store's natural order.
	// Returns an empty slice when the catalog is empty.
	List(ctx context.Context) ([]*domain.Product, error)

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create persists a new product from the given draft and returns the
	// stored record with its assigned ID. Nil draft fields are written as
	// NULL; a nil name violates the NOT NULL constraint and is surfaced
	// as ErrInvalidEntity.
	Create(ctx context.Context, draft *domain.ProductDraft) (*domain.Product, error)

	// Update overwrites an existing product with the given record.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its ID.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new ProductStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) ProductStore
}
