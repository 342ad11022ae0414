package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/platform/logger"
	"github.com/febdev/catalog-api/internal/store"
)

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the ProductStore
// interface. It accepts a database connection or transaction that should be initialized
// and managed by the caller. If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.ProductStore.List
// It retrieves all products in primary key order.
func (s *PostgresProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, price, stock
		FROM products
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if the catalog is empty
	if products == nil {
		products = []*domain.Product{}
	}

	log.Debug("listed products", slog.Int("count", len(products)))
	return products, nil
}

// GetByID implements store.ProductStore.GetByID
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, price, stock
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	return product, nil
}

// Create implements store.ProductStore.Create
// Nil draft fields are written as NULL; a nil name violates the table's
// NOT NULL constraint and is surfaced as store.ErrInvalidEntity.
func (s *PostgresProductStore) Create(
	ctx context.Context,
	draft *domain.ProductDraft,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock
	`

	product, err := scanProduct(s.db.QueryRowContext(
		ctx,
		query,
		draft.Name,
		draft.Description,
		draft.Price,
		draft.Stock,
	).Scan)

	if err != nil {
		if IsNotNullViolation(err) {
			log.Warn("product creation rejected by required-field constraint",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		log.Error("failed to create product", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("product created successfully",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name))
	return product, nil
}

// Update implements store.ProductStore.Update
// It overwrites all mutable columns with the given record's values.
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.ID,
	)
	if err != nil {
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", product.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "product"); err != nil {
		log.Debug("product not found for update",
			slog.Int64("product_id", product.ID))
		return store.ErrProductNotFound
	}

	log.Info("product updated successfully", slog.Int64("product_id", product.ID))
	return nil
}

// Delete implements store.ProductStore.Delete
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM products
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "product"); err != nil {
		log.Debug("product not found for delete", slog.Int64("product_id", id))
		return store.ErrProductNotFound
	}

	log.Info("product deleted successfully", slog.Int64("product_id", id))
	return nil
}

// scanProduct maps a products row onto a domain.Product using the given scan
// function, so it works for both *sql.Row and *sql.Rows. Nullable columns
// scan to zero values.
func scanProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var product domain.Product
	var description sql.NullString
	var price sql.NullFloat64
	var stock sql.NullInt64

	if err := scan(
		&product.ID,
		&product.Name,
		&description,
		&price,
		&stock,
	); err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Price = price.Float64
	product.Stock = stock.Int64
	return &product, nil
}
