package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/store"
)

// ProductUpdate carries the decoded fields of a product update request.
// Zero values mean "leave the stored value unchanged": existing clients
// rely on an empty string or zero being treated as unset, so a product
// cannot be updated to a zero value through this path. See DESIGN.md
// before changing this to a presence check.
type ProductUpdate struct {
	Name        string
	Description string
	Price       float64
	Stock       int64
}

// ProductService provides the catalog's CRUD operations.
type ProductService interface {
	// List retrieves all products in the store's natural order.
	List(ctx context.Context) ([]*domain.Product, error)

	// GetByID retrieves a single product.
	// Returns store.ErrProductNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create persists a new product from the draft and returns the stored
	// record. A draft without a name is rejected by the store's
	// required-field constraint (store.ErrInvalidEntity).
	Create(ctx context.Context, draft *domain.ProductDraft) (*domain.Product, error)

	// Update applies a partial update to an existing product and returns
	// the updated record. Returns store.ErrProductNotFound if it does not
	// exist.
	Update(ctx context.Context, id int64, update ProductUpdate) (*domain.Product, error)

	// Delete removes a product on behalf of the given actor. Returns
	// ErrNotAdmin when the actor lacks the admin role (checked before the
	// product is touched) and store.ErrProductNotFound when the product
	// does not exist.
	Delete(ctx context.Context, actorID, id int64) error
}

// ProductServiceImpl implements the ProductService interface
type ProductServiceImpl struct {
	productStore store.ProductStore
	userStore    store.UserStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productStore store.ProductStore,
	userStore store.UserStore,
	db *sql.DB,
	logger *slog.Logger,
) ProductService {
	return &ProductServiceImpl{
		productStore: productStore,
		userStore:    userStore,
		db:           db,
		logger:       logger.With("component", "product_service"),
	}
}

// List retrieves all products.
func (s *ProductServiceImpl) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (s *ProductServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			s.logger.Debug("product not found", "product_id", id)
		} else {
			s.logger.Error("failed to retrieve product",
				"error", err,
				"product_id", id)
		}
		return nil, err
	}
	return product, nil
}

// Create persists a new product inside a transaction so the caller only
// observes committed state.
func (s *ProductServiceImpl) Create(
	ctx context.Context,
	draft *domain.ProductDraft,
) (*domain.Product, error) {
	var product *domain.Product

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		created, err := s.productStore.WithTx(tx).Create(ctx, draft)
		if err != nil {
			return err
		}
		product = created
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			s.logger.Debug("product creation rejected by store constraint",
				"error", err)
		} else {
			s.logger.Error("failed to create product", "error", err)
		}
		return nil, err
	}

	s.logger.Info("product created successfully",
		"product_id", product.ID,
		"name", product.Name)

	return product, nil
}

// Update applies a partial update: each incoming field overwrites the
// stored value only when it is non-zero. The read and the write share one
// transaction.
func (s *ProductServiceImpl) Update(
	ctx context.Context,
	id int64,
	update ProductUpdate,
) (*domain.Product, error) {
	var product *domain.Product

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.productStore.WithTx(tx)

		current, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if update.Name != "" {
			current.Name = update.Name
		}
		if update.Description != "" {
			current.Description = update.Description
		}
		if update.Price != 0 {
			current.Price = update.Price
		}
		if update.Stock != 0 {
			current.Stock = update.Stock
		}

		if err := txStore.Update(ctx, current); err != nil {
			return err
		}

		product = current
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			s.logger.Debug("product not found for update", "product_id", id)
		} else {
			s.logger.Error("failed to update product",
				"error", err,
				"product_id", id)
		}
		return nil, err
	}

	s.logger.Info("product updated successfully", "product_id", id)
	return product, nil
}

// Delete removes a product after verifying the actor's admin role.
// The role lookup and the delete share one transaction.
func (s *ProductServiceImpl) Delete(ctx context.Context, actorID, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		actor, err := s.userStore.WithTx(tx).GetByID(ctx, actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin {
			return ErrNotAdmin
		}

		return s.productStore.WithTx(tx).Delete(ctx, id)
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrNotAdmin):
			s.logger.Debug("non-admin attempted product delete",
				"actor_id", actorID,
				"product_id", id)
		case errors.Is(err, store.ErrProductNotFound):
			s.logger.Debug("product not found for delete", "product_id", id)
		default:
			s.logger.Error("failed to delete product",
				"error", err,
				"actor_id", actorID,
				"product_id", id)
		}
		return err
	}

	s.logger.Info("product deleted successfully",
		"actor_id", actorID,
		"product_id", id)
	return nil
}
