package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CameronXie/store-api/internal/api/rest/response"
	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/dto"
	"github.com/CameronXie/store-api/internal/mapper"
	"github.com/CameronXie/store-api/internal/query"
	"github.com/CameronXie/store-api/internal/validation"
)

const searchQueryRequiredMessage = "q is required"

// CustomerRepository defines the interface for customer repository operations
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context, req query.PageRequest) (query.Page[domain.Customer], error)
	SearchCustomers(ctx context.Context, q string) ([]domain.Customer, error)
}

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	repo   CustomerRepository
	logger *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler instance
func NewCustomerHandler(repo CustomerRepository, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	req := parsePageRequest(r)

	page, err := h.repo.ListCustomers(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "failed to list customers", err,
			"page", req.Page, "size", req.Size)
		return
	}

	response.JSONResponse(w, http.StatusOK, mapper.MapPage(page, mapper.ToCustomerDTO))
}

// SearchCustomers handles GET /customers/search?q= and matches q against customer names
func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var errs validation.Errors
	if err := errs.NotBlank("q", q, searchQueryRequiredMessage).Err(); err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "invalid customer search", err)
		return
	}

	customers, err := h.repo.SearchCustomers(r.Context(), q)
	if err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "failed to search customers", err, "q", q)
		return
	}

	result := make([]dto.CustomerDTO, 0, len(customers))
	for i := range customers {
		result = append(result, mapper.ToCustomerDTO(&customers[i]))
	}

	response.JSONResponse(w, http.StatusOK, result)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerDTO
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "invalid customer request", err)
		return
	}

	if err := req.Validate(); err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "invalid customer request", err)
		return
	}

	customer := mapper.ToCustomerEntity(&req)
	if err := h.repo.CreateCustomer(r.Context(), customer); err != nil {
		writeFailure(w, r, h.logger, domain.KindCustomer, "failed to create customer", err,
			"customer_name", customer.Name)
		return
	}

	response.Created(w, location(r, customer.ID))
}
