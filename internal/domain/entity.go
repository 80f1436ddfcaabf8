package domain

// Kind identifies the entity family an operation works on.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindProduct  Kind = "product"
	KindOrder    Kind = "order"
)

// Customer owns its orders. Deleting a customer cascades to every order it owns.
type Customer struct {
	ID     int64   `gorm:"primaryKey"`
	Name   string  `gorm:"size:255"`
	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// SameAs reports whether both customers carry the same persisted identity.
func (c *Customer) SameAs(other *Customer) bool {
	return sameID(c, other, func(v *Customer) int64 { return v.ID })
}

// Product is the inverse side of the order/product association and never cascades.
type Product struct {
	ID          int64   `gorm:"primaryKey"`
	Description string  `gorm:"size:255"`
	Orders      []Order `gorm:"many2many:order_products"`
}

// SameAs reports whether both products carry the same persisted identity.
func (p *Product) SameAs(other *Product) bool {
	return sameID(p, other, func(v *Product) int64 { return v.ID })
}

// OrderIDs projects the inverse association onto order ids, in the order the store
// returned them. The result is never nil.
func (p *Product) OrderIDs() []int64 {
	ids := make([]int64, 0, len(p.Orders))
	for i := range p.Orders {
		ids = append(ids, p.Orders[i].ID)
	}

	return ids
}

// Order belongs to exactly one customer and owns the order/product association.
type Order struct {
	ID          int64     `gorm:"primaryKey"`
	Description string    `gorm:"size:255;not null"`
	CustomerID  int64     `gorm:"not null;index"`
	Customer    *Customer
	Products    []Product `gorm:"many2many:order_products;constraint:OnDelete:CASCADE"`
}

// SameAs reports whether both orders carry the same persisted identity.
func (o *Order) SameAs(other *Order) bool {
	return sameID(o, other, func(v *Order) int64 { return v.ID })
}

// ProductIDs returns the ids of the referenced products in association order.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.Products))
	for i := range o.Products {
		ids = append(ids, o.Products[i].ID)
	}

	return ids
}

// sameID compares two entities by id only. Entities without an id are never equal.
func sameID[T any](a, b *T, id func(*T) int64) bool {
	if a == nil || b == nil {
		return false
	}

	return id(a) != 0 && id(a) == id(b)
}
