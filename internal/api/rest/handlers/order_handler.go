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

// OrderRepository defines the interface for order repository operations
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, req query.PageRequest) (query.Page[domain.Order], error)
}

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	repo   OrderRepository
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(repo OrderRepository, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	req := parsePageRequest(r)

	page, err := h.repo.ListOrders(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindOrder, "failed to list orders", err,
			"page", req.Page, "size", req.Size)
		return
	}

	response.JSONResponse(w, http.StatusOK, mapper.MapPage(page, mapper.ToOrderDTO))
}

// GetOrderByID handles GET /orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindOrder, "invalid order id", err, "id", r.PathValue("id"))
		return
	}

	order, err := h.repo.GetOrderByID(r.Context(), id)
	if err != nil {
		var notFoundErr *repository.NotFoundError
		if errors.As(err, &notFoundErr) {
			err = classification.NewStatusError(http.StatusNotFound, notFoundErr.Error())
		}

		writeFailure(w, r, h.logger, domain.KindOrder, "failed to retrieve order", err, "order_id", id)
		return
	}

	response.JSONResponse(w, http.StatusOK, mapper.ToOrderDTO(order))
}

// CreateOrder handles POST /orders. The customer and products in the body are
// references to existing records and must carry their ids.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderDTO
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, r, h.logger, domain.KindOrder, "invalid order request", err)
		return
	}

	if err := req.Validate(); err != nil {
		writeFailure(w, r, h.logger, domain.KindOrder, "invalid order request", err)
		return
	}

	order := mapper.ToOrderEntity(&req)
	if err := h.repo.CreateOrder(r.Context(), order); err != nil {
		writeFailure(w, r, h.logger, domain.KindOrder, "failed to create order", err,
			"order_description", order.Description, "customer_id", order.CustomerID)
		return
	}

	response.Created(w, location(r, order.ID))
}
