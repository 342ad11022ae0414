package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/store"
)

var productColumns = []string{"id", "name", "description", "price", "stock"}

func newProductStoreWithMock(t *testing.T) (*PostgresProductStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPostgresProductStore(db, nil), mock
}

func TestProductStore_List(t *testing.T) {
	t.Parallel()

	selectPattern := regexp.QuoteMeta("SELECT id, name, description, price, stock")

	t.Run("returns all products", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(1), "Product 1", "This is product 1", 479.99, int64(15)).
			AddRow(int64(2), "Product 2", nil, 15.99, int64(24))
		mock.ExpectQuery(selectPattern).WillReturnRows(rows)

		products, err := s.List(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Product 1", products[0].Name)
		assert.Equal(t, 479.99, products[0].Price)
		// NULL description scans to the empty string.
		assert.Empty(t, products[1].Description)
		assert.Equal(t, int64(24), products[1].Stock)
	})

	t.Run("empty catalog returns empty slice", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectQuery(selectPattern).WillReturnRows(sqlmock.NewRows(productColumns))

		products, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestProductStore_GetByID(t *testing.T) {
	t.Parallel()

	selectPattern := regexp.QuoteMeta("SELECT id, name, description, price, stock")

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(1), "Product 1", "This is product 1", 479.99, int64(15))
		mock.ExpectQuery(selectPattern).WithArgs(int64(1)).WillReturnRows(rows)

		product, err := s.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Product 1", product.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectQuery(selectPattern).WithArgs(int64(42)).WillReturnError(sql.ErrNoRows)

		product, err := s.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, store.ErrProductNotFound)
		assert.Nil(t, product)
	})
}

func TestProductStore_Create(t *testing.T) {
	t.Parallel()

	insertPattern := regexp.QuoteMeta("INSERT INTO products (name, description, price, stock)")

	t.Run("full draft", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		name := "Product 1"
		description := "This is product 1"
		price := 479.99
		stock := int64(15)
		draft := &domain.ProductDraft{
			Name:        &name,
			Description: &description,
			Price:       &price,
			Stock:       &stock,
		}

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(1), name, description, price, stock)
		mock.ExpectQuery(insertPattern).
			WithArgs(name, description, price, stock).
			WillReturnRows(rows)

		product, err := s.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, name, product.Name)
		assert.Equal(t, price, product.Price)
	})

	t.Run("partial draft persists NULLs", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		name := "Product 2"
		draft := &domain.ProductDraft{Name: &name}

		rows := sqlmock.NewRows(productColumns).
			AddRow(int64(2), name, nil, nil, nil)
		mock.ExpectQuery(insertPattern).WillReturnRows(rows)

		product, err := s.Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, name, product.Name)
		assert.Empty(t, product.Description)
		assert.Zero(t, product.Price)
		assert.Zero(t, product.Stock)
	})

	t.Run("missing name violates required-field constraint", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectQuery(insertPattern).
			WillReturnError(pgError(pgerrcode.NotNullViolation))

		product, err := s.Create(context.Background(), &domain.ProductDraft{})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Nil(t, product)
	})
}

func TestProductStore_Update(t *testing.T) {
	t.Parallel()

	updatePattern := regexp.QuoteMeta("UPDATE products")

	t.Run("updates existing product", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		product := &domain.Product{
			ID:          1,
			Name:        "Renamed",
			Description: "New description",
			Price:       99.99,
			Stock:       int64(5),
		}

		mock.ExpectExec(updatePattern).
			WithArgs("Renamed", "New description", 99.99, int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Update(context.Background(), product))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectExec(updatePattern).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(context.Background(), &domain.Product{ID: 42, Name: "Ghost"})
		assert.ErrorIs(t, err, store.ErrProductNotFound)
	})
}

func TestProductStore_Delete(t *testing.T) {
	t.Parallel()

	deletePattern := regexp.QuoteMeta("DELETE FROM products")

	t.Run("deletes existing product", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectExec(deletePattern).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newProductStoreWithMock(t)

		mock.ExpectExec(deletePattern).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, store.ErrProductNotFound)
	})
}
