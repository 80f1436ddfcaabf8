package dto

import (
	"github.com/CameronXie/store-api/internal/validation"
)

const (
	nameRequiredMessage        = "name is required"
	descriptionRequiredMessage = "description is required"
	customerRequiredMessage    = "customer is required"
	productsRequiredMessage    = "Order must contain at least one product"
)

// CustomerDTO is the wire shape of a customer. Reads carry the customer's orders;
// writes only consume Name.
type CustomerDTO struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Orders []OrderDTO `json:"orders"`
}

// Validate checks the fields a customer write consumes.
func (d *CustomerDTO) Validate() error {
	var errs validation.Errors
	errs = errs.NotBlank("name", d.Name, nameRequiredMessage)

	return errs.Err()
}

// ProductDTO is the wire shape of a product. Reads expose only the ids of the orders
// referencing the product.
type ProductDTO struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	OrderIDs    []int64 `json:"orderIds"`
}

// Validate checks the fields a product write consumes.
func (d *ProductDTO) Validate() error {
	var errs validation.Errors
	errs = errs.NotBlank("description", d.Description, descriptionRequiredMessage)

	return errs.Err()
}

// OrderCustomerDTO is the compact customer shape nested in an order. On writes only ID
// is meaningful.
type OrderCustomerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderProductDTO is the compact product shape nested in an order. On writes only ID
// is meaningful.
type OrderProductDTO struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// OrderDTO is the wire shape of an order, shared by reads and writes.
type OrderDTO struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Customer    *OrderCustomerDTO `json:"customer"`
	Products    []OrderProductDTO `json:"products"`
}

// Validate checks every order field and reports all violations together.
func (d *OrderDTO) Validate() error {
	var errs validation.Errors
	errs = errs.NotBlank("description", d.Description, descriptionRequiredMessage)
	errs = errs.Require("customer", d.Customer != nil, customerRequiredMessage)
	errs = errs.Require("products", len(d.Products) > 0, productsRequiredMessage)

	return errs.Err()
}

// Page wraps one page of read DTOs.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}
