package gormstore

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/query"
	"github.com/CameronXie/store-api/internal/repository"
)

const (
	ProductResource = "product"
)

// ProductRepository provides database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

// CreateProduct inserts a product and assigns its generated id.
func (r *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
	return translateError(ProductResource, err)
}

// GetProductByID retrieves a product and the orders referencing it.
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := withOrderIDs(r.db.WithContext(ctx)).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repository.NotFoundError{
				Resource: ProductResource,
				Key:      "id",
				Value:    strconv.FormatInt(id, 10),
			}
		}
		return nil, translateError(ProductResource, err)
	}

	return &product, nil
}

// ListProducts returns one page of products, newest first.
func (r *ProductRepository) ListProducts(ctx context.Context, req query.PageRequest) (query.Page[domain.Product], error) {
	page := query.Page[domain.Product]{Page: req.Page, Size: req.Size}
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.Product{}).Count(&page.TotalElements).Error; err != nil {
		return page, translateError(ProductResource, err)
	}

	offset, ok := req.Offset()
	if !ok {
		return page, nil
	}

	err := withOrderIDs(db).
		Order(query.OrderByIDDesc).
		Offset(offset).
		Limit(req.Size).
		Find(&page.Content).Error
	if err != nil {
		return page, translateError(ProductResource, err)
	}

	return page, nil
}

func withOrderIDs(db *gorm.DB) *gorm.DB {
	return db.Preload("Orders", byID)
}
