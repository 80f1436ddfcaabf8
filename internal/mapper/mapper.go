package mapper

import (
	"github.com/CameronXie/store-api/internal/domain"
	"github.com/CameronXie/store-api/internal/dto"
	"github.com/CameronXie/store-api/internal/query"
)

// ToCustomerDTO maps a customer and its owned orders to the read shape.
func ToCustomerDTO(customer *domain.Customer) dto.CustomerDTO {
	orders := make([]dto.OrderDTO, 0, len(customer.Orders))
	for i := range customer.Orders {
		orders = append(orders, ToOrderDTO(&customer.Orders[i]))
	}

	return dto.CustomerDTO{
		ID:     customer.ID,
		Name:   customer.Name,
		Orders: orders,
	}
}

// ToCustomerEntity builds the customer to create. The inbound id and orders are dropped.
func ToCustomerEntity(d *dto.CustomerDTO) *domain.Customer {
	return &domain.Customer{
		Name: d.Name,
	}
}

// ToProductDTO maps a product to the read shape, projecting its orders onto their ids.
func ToProductDTO(product *domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          product.ID,
		Description: product.Description,
		OrderIDs:    product.OrderIDs(),
	}
}

// ToProductEntity builds the product to create. The inbound id and order ids are dropped.
func ToProductEntity(d *dto.ProductDTO) *domain.Product {
	return &domain.Product{
		Description: d.Description,
	}
}

// ToOrderDTO maps an order to the read shape with compact customer and product views.
// When the customer was not loaded only its id is known.
func ToOrderDTO(order *domain.Order) dto.OrderDTO {
	customer := &dto.OrderCustomerDTO{ID: order.CustomerID}
	if order.Customer != nil {
		customer = &dto.OrderCustomerDTO{
			ID:   order.Customer.ID,
			Name: order.Customer.Name,
		}
	}

	products := make([]dto.OrderProductDTO, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, dto.OrderProductDTO{
			ID:          p.ID,
			Description: p.Description,
		})
	}

	return dto.OrderDTO{
		ID:          order.ID,
		Description: order.Description,
		Customer:    customer,
		Products:    products,
	}
}

// ToOrderEntity builds the order to create. The nested customer and products are
// references: only their ids are kept, and the store resolves them at save time.
// A reference without an id is kept as id 0 and fails resolution there.
func ToOrderEntity(d *dto.OrderDTO) *domain.Order {
	order := &domain.Order{
		Description: d.Description,
	}

	if d.Customer != nil {
		order.CustomerID = d.Customer.ID
		order.Customer = &domain.Customer{ID: d.Customer.ID}
	}

	order.Products = make([]domain.Product, 0, len(d.Products))
	for _, p := range d.Products {
		order.Products = append(order.Products, domain.Product{ID: p.ID})
	}

	return order
}

// MapPage maps every record of a page and carries the paging metadata over.
func MapPage[E, D any](page query.Page[E], fn func(*E) D) dto.Page[D] {
	content := make([]D, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, fn(&page.Content[i]))
	}

	return dto.Page[D]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
	}
}
