package gormstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/query"
)

const (
	CustomerResource = "customer"
)

// CustomerRepository provides database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
	}
}

// CreateCustomer inserts a customer and assigns its generated id.
func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(customer).Error
	return translateError(CustomerResource, err)
}

// ListCustomers returns one page of customers, newest first, with their orders loaded.
func (r *CustomerRepository) ListCustomers(ctx context.Context, req query.PageRequest) (query.Page[domain.Customer], error) {
	page := query.Page[domain.Customer]{Page: req.Page, Size: req.Size}
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.Customer{}).Count(&page.TotalElements).Error; err != nil {
		return page, translateError(CustomerResource, err)
	}

	offset, ok := req.Offset()
	if !ok {
		return page, nil
	}

	err := withOrders(db).
		Order(query.OrderByIDDesc).
		Offset(offset).
		Limit(req.Size).
		Find(&page.Content).Error
	if err != nil {
		return page, translateError(CustomerResource, err)
	}

	return page, nil
}

// SearchCustomers returns every customer whose name contains q, ordered by id. Both sides are
// folded with the database LOWER function, which on SQLite folds ASCII letters only.
func (r *CustomerRepository) SearchCustomers(ctx context.Context, q string) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0)
	err := withOrders(r.db.WithContext(ctx)).
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '"+query.LikeEscape+"'", query.SearchPattern(q)).
		Order("id").
		Find(&customers).Error
	if err != nil {
		return nil, translateError(CustomerResource, err)
	}

	return customers, nil
}

// withOrders declares the entity graph needed to render a customer with its orders.
func withOrders(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Orders", byID).
		Preload("Orders.Customer").
		Preload("Orders.Products", byID)
}
