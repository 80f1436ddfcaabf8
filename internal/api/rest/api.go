package rest

import (
	"net/http"

	"github.com/CameronXie/store-api/internal/api/rest/handlers"
	"github.com/CameronXie/store-api/internal/api/rest/middlewares"
	"github.com/CameronXie/store-api/internal/api/rest/response"
)

const APIPrefix = "/api/v1"

type RouterConfig struct {
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	Middlewares     []middlewares.Middleware
}

// NewMuxWithHandlers initializes a new HTTP mux with routes defined by the given RouterConfig.
// Middlewares wrap the API routes only, the health check stays unwrapped.
func NewMuxWithHandlers(cfg *RouterConfig) *http.ServeMux {
	root := http.NewServeMux()
	root.HandleFunc("GET /health", handleHealthCheck)

	api := http.NewServeMux()
	api.HandleFunc("GET "+APIPrefix+"/customers", cfg.CustomerHandler.ListCustomers)
	api.HandleFunc("GET "+APIPrefix+"/customers/search", cfg.CustomerHandler.SearchCustomers)
	api.HandleFunc("POST "+APIPrefix+"/customers", cfg.CustomerHandler.CreateCustomer)

	api.HandleFunc("GET "+APIPrefix+"/products", cfg.ProductHandler.ListProducts)
	api.HandleFunc("GET "+APIPrefix+"/products/{id}", cfg.ProductHandler.GetProductByID)
	api.HandleFunc("POST "+APIPrefix+"/products", cfg.ProductHandler.CreateProduct)

	api.HandleFunc("GET "+APIPrefix+"/orders", cfg.OrderHandler.ListOrders)
	api.HandleFunc("GET "+APIPrefix+"/orders/{id}", cfg.OrderHandler.GetOrderByID)
	api.HandleFunc("POST "+APIPrefix+"/orders", cfg.OrderHandler.CreateOrder)

	root.Handle(APIPrefix+"/", middlewares.Chain(api, cfg.Middlewares...))

	return root
}

// handleHealthCheck returns a basic health status.
func handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}
