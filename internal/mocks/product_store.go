package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing
type MockProductStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.Product, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	CreateFn  func(ctx context.Context, draft *domain.ProductDraft) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, product *domain.Product) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation, keyed by ID
	Products      map[int64]*domain.Product
	LastProductID int64
}

// NewMockProductStore creates a new mock store with initialized defaults
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{
		Products: make(map[int64]*domain.Product),
	}
}

// List implements the ProductStore interface
func (m *MockProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	products := make([]*domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID implements the ProductStore interface
func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	product, exists := m.Products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}
	return product, nil
}

// Create implements the ProductStore interface. Like the real store, a draft
// without a name fails the required-field constraint.
func (m *MockProductStore) Create(
	ctx context.Context,
	draft *domain.ProductDraft,
) (*domain.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, draft)
	}

	if draft.Name == nil {
		return nil, store.ErrInvalidEntity
	}

	m.LastProductID++
	product := &domain.Product{
		ID:   m.LastProductID,
		Name: *draft.Name,
	}
	if draft.Description != nil {
		product.Description = *draft.Description
	}
	if draft.Price != nil {
		product.Price = *draft.Price
	}
	if draft.Stock != nil {
		product.Stock = *draft.Stock
	}

	m.Products[product.ID] = product
	return product, nil
}

// Update implements the ProductStore interface
func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, product)
	}

	if _, exists := m.Products[product.ID]; !exists {
		return store.ErrProductNotFound
	}
	m.Products[product.ID] = product
	return nil
}

// Delete implements the ProductStore interface
func (m *MockProductStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Products[id]; !exists {
		return store.ErrProductNotFound
	}
	delete(m.Products, id)
	return nil
}

// WithTx implements the ProductStore interface for transaction support.
// The mock has no real transaction, so it returns itself.
func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
