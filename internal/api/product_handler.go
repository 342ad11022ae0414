package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/febdev/catalog-api/internal/api/shared"
	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/service"
	"github.com/febdev/catalog-api/internal/store"
)

// ProductHandler handles product-related API requests.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts handles GET /products requests.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		shared.RespondWithErrorAndLog(
			w, r,
			http.StatusInternalServerError,
			"Failed to list products",
			err,
		)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, productToResponse(product))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetProduct handles GET /products/{id} requests.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		h.respondProductError(w, r, id, err, "Failed to get product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// CreateProduct handles POST /products requests. The route is guarded by the
// auth middleware; any valid bearer token may create products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := shared.UserIDFromContext(r.Context()); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft := &domain.ProductDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	product, err := h.productService.Create(r.Context(), draft)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Product name is required")
			return
		}
		slog.Error("failed to create product", "error", err)
		shared.RespondWithErrorAndLog(
			w, r,
			http.StatusInternalServerError,
			"Failed to create product",
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// UpdateProduct handles PUT and PATCH /products/{id} requests.
// Whether this route sits behind the auth guard is a router-level policy
// decision (see config.AuthConfig.ProtectProductUpdate).
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := h.productService.Update(r.Context(), id, service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.respondProductError(w, r, id, err, "Failed to update product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// DeleteProduct handles DELETE /products/{id} requests. The route is guarded
// by the auth middleware; the admin role is verified here, so a valid token
// without the role yields Forbidden rather than Unauthorized.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	actorID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.productService.Delete(r.Context(), actorID, id); err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			shared.RespondWithError(
				w, r,
				http.StatusForbidden,
				"Not authorised to delete a product",
			)
			return
		}
		// A valid token whose subject no longer exists is an auth failure,
		// not a missing product.
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		h.respondProductError(w, r, id, err, "Failed to delete product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: fmt.Sprintf("Product with id %d has been deleted", id),
	})
}

// respondProductError renders the common failure cases for single-product
// operations: a not-found message carrying the missing id, or a sanitized
// 5xx for everything else.
func (h *ProductHandler) respondProductError(
	w http.ResponseWriter,
	r *http.Request,
	id int64,
	err error,
	fallbackMessage string,
) {
	if errors.Is(err, store.ErrProductNotFound) {
		shared.RespondWithError(
			w, r,
			http.StatusNotFound,
			fmt.Sprintf("Product with id %d doesn't exist", id),
		)
		return
	}

	slog.Error("product operation failed", "error", err, "product_id", id)
	shared.RespondWithErrorAndLog(
		w, r,
		MapErrorToStatusCode(err),
		fallbackMessage,
		err,
	)
}
