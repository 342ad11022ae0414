package mocks

import (
	"context"
	"sort"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/service"
	"github.com/febdev/catalog-api/internal/store"
)

// MockProductService implements service.ProductService for testing
type MockProductService struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.Product, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	CreateFn  func(ctx context.Context, draft *domain.ProductDraft) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, id int64, update service.ProductUpdate) (*domain.Product, error)
	DeleteFn  func(ctx context.Context, actorID, id int64) error

	// Data for default implementation, keyed by ID
	Products      map[int64]*domain.Product
	LastProductID int64

	// Admins lists actor IDs the default Delete treats as admins.
	Admins map[int64]bool
}

// NewMockProductService creates a new mock service with initialized defaults
func NewMockProductService() *MockProductService {
	return &MockProductService{
		Products: make(map[int64]*domain.Product),
		Admins:   make(map[int64]bool),
	}
}

// List implements the ProductService interface
func (m *MockProductService) List(ctx context.Context) ([]*domain.Product, error) {
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

// GetByID implements the ProductService interface
func (m *MockProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	product, exists := m.Products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}
	return product, nil
}

// Create implements the ProductService interface
func (m *MockProductService) Create(
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

// Update implements the ProductService interface with the same skip-empty
// semantics as the real service: zero-value fields keep the stored value.
func (m *MockProductService) Update(
	ctx context.Context,
	id int64,
	update service.ProductUpdate,
) (*domain.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}

	product, exists := m.Products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}

	if update.Name != "" {
		product.Name = update.Name
	}
	if update.Description != "" {
		product.Description = update.Description
	}
	if update.Price != 0 {
		product.Price = update.Price
	}
	if update.Stock != 0 {
		product.Stock = update.Stock
	}

	return product, nil
}

// Delete implements the ProductService interface
func (m *MockProductService) Delete(ctx context.Context, actorID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, actorID, id)
	}

	if !m.Admins[actorID] {
		return service.ErrNotAdmin
	}
	if _, exists := m.Products[id]; !exists {
		return store.ErrProductNotFound
	}
	delete(m.Products, id)
	return nil
}
