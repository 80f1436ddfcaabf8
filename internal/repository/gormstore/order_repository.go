package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/query"
	"github.com/CameronXie/store-api/internal/repository"
)

const (
	OrderResource = "order"
)

// OrderRepository provides database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// CreateOrder inserts an order and its product associations in one transaction.
// The customer and products are references: they are resolved against existing rows and
// never created. An unresolved reference fails with repository.IntegrityError.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveReferences(tx, order); err != nil {
			return err
		}

		return tx.Omit("Customer", "Products.*").Create(order).Error
	})

	return translateError(OrderResource, err)
}

// GetOrderByID retrieves an order with its customer and products.
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := withCustomerAndProducts(r.db.WithContext(ctx)).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repository.NotFoundError{
				Resource: OrderResource,
				Key:      "id",
				Value:    strconv.FormatInt(id, 10),
			}
		}
		return nil, translateError(OrderResource, err)
	}

	return &order, nil
}

// ListOrders returns one page of orders, newest first.
func (r *OrderRepository) ListOrders(ctx context.Context, req query.PageRequest) (query.Page[domain.Order], error) {
	page := query.Page[domain.Order]{Page: req.Page, Size: req.Size}
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.Order{}).Count(&page.TotalElements).Error; err != nil {
		return page, translateError(OrderResource, err)
	}

	offset, ok := req.Offset()
	if !ok {
		return page, nil
	}

	err := withCustomerAndProducts(db).
		Order(query.OrderByIDDesc).
		Offset(offset).
		Limit(req.Size).
		Find(&page.Content).Error
	if err != nil {
		return page, translateError(OrderResource, err)
	}

	return page, nil
}

func withCustomerAndProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("Products", byID)
}

// resolveReferences checks that the customer and every product referenced by order exist.
func resolveReferences(tx *gorm.DB, order *domain.Order) error {
	if order.Customer != nil {
		order.CustomerID = order.Customer.ID
	}

	var customers int64
	if err := tx.Model(&domain.Customer{}).Where("id = ?", order.CustomerID).Count(&customers).Error; err != nil {
		return err
	}

	if customers == 0 {
		return unresolvedReference("customer id %d does not exist", order.CustomerID)
	}

	ids := make([]int64, 0, len(order.Products))
	seen := make(map[int64]struct{}, len(order.Products))
	for _, p := range order.Products {
		if p.ID == 0 {
			return unresolvedReference("product reference without id")
		}
		if _, ok := seen[p.ID]; !ok {
			seen[p.ID] = struct{}{}
			ids = append(ids, p.ID)
		}
	}

	if len(ids) == 0 {
		return unresolvedReference("order references no products")
	}

	var products int64
	if err := tx.Model(&domain.Product{}).Where("id IN ?", ids).Count(&products).Error; err != nil {
		return err
	}

	if products != int64(len(ids)) {
		return unresolvedReference("order references %d product ids, %d exist", len(ids), products)
	}

	return nil
}

func unresolvedReference(format string, args ...any) error {
	return &repository.IntegrityError{
		Resource: OrderResource,
		Err:      fmt.Errorf(format, args...),
	}
}
