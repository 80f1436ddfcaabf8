package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/CameronXie/store-api/internal/api/rest/response"
	"github.com/CameronXie/store-api/internal/classification"
	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/dto"
	"github.com/CameronXie/store-api/internal/mapper"
	"github.com/CameronXie/store-api/internal/query"
	"github.com/CameronXie/store-api/internal/repository"
)

// ProductRepository defines the interface for product repository operations
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, req query.PageRequest) (query.Page[domain.Product], error)
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	repo   ProductRepository
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(repo ProductRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	req := parsePageRequest(r)

	page, err := h.repo.ListProducts(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindProduct, "failed to list products", err,
			"page", req.Page, "size", req.Size)
		return
	}

	response.JSONResponse(w, http.StatusOK, mapper.MapPage(page, mapper.ToProductDTO))
}

// GetProductByID handles GET /products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindProduct, "invalid product id", err, "id", r.PathValue("id"))
		return
	}

	product, err := h.repo.GetProductByID(r.Context(), id)
	if err != nil {
		var notFoundErr *repository.NotFoundError
		if errors.As(err, &notFoundErr) {
			err = classification.NewStatusError(http.StatusNotFound, notFoundErr.Error())
		}

		writeFailure(w, r, h.logger, domain.KindProduct, "failed to retrieve product", err, "product_id", id)
		return
	}

	response.JSONResponse(w, http.StatusOK, mapper.ToProductDTO(product))
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductDTO
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, r, h.logger, domain.KindProduct, "invalid product request", err)
		return
	}

	if err := req.Validate(); err != nil {
		writeFailure(w, r, h.logger, domain.KindProduct, "invalid product request", err)
		return
	}

	product := mapper.ToProductEntity(&req)
	if err := h.repo.CreateProduct(r.Context(), product); err != nil {
		writeFailure(w, r, h.logger, domain.KindProduct, "failed to create product", err,
			"product_description", product.Description)
		return
	}

	response.Created(w, location(r, product.ID))
}
