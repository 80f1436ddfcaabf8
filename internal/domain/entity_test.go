package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_SameAs(t *testing.T) {
	testCases := map[string]struct {
		a        *Customer
		b        *Customer
		expected bool
	}{
		"should be equal when ids match and names differ": {
			a:        &Customer{ID: 1, Name: "John Doe"},
			b:        &Customer{ID: 1, Name: "Jane Doe"},
			expected: true,
		},
		"should not be equal when ids differ and names match": {
			a:        &Customer{ID: 1, Name: "John Doe"},
			b:        &Customer{ID: 2, Name: "John Doe"},
			expected: false,
		},
		"should not be equal when both ids are unset": {
			a:        &Customer{Name: "John Doe"},
			b:        &Customer{Name: "John Doe"},
			expected: false,
		},
		"should not be equal to nil": {
			a:        &Customer{ID: 1},
			b:        nil,
			expected: false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.SameAs(tc.b))
		})
	}
}

func TestProduct_SameAs(t *testing.T) {
	assert.True(t, (&Product{ID: 7, Description: "Widget"}).SameAs(&Product{ID: 7}))
	assert.False(t, (&Product{ID: 7}).SameAs(&Product{ID: 8}))
}

func TestOrder_SameAs(t *testing.T) {
	assert.True(t, (&Order{ID: 3, Description: "a"}).SameAs(&Order{ID: 3, Description: "b"}))
	assert.False(t, (&Order{}).SameAs(&Order{}))
}

func TestProduct_OrderIDs(t *testing.T) {
	testCases := map[string]struct {
		product  *Product
		expected []int64
	}{
		"should keep store order of associated orders": {
			product:  &Product{ID: 1, Orders: []Order{{ID: 9}, {ID: 3}, {ID: 5}}},
			expected: []int64{9, 3, 5},
		},
		"should return empty slice when relation is unset": {
			product:  &Product{ID: 1},
			expected: []int64{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ids := tc.product.OrderIDs()
			assert.NotNil(t, ids)
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestOrder_ProductIDs(t *testing.T) {
	order := &Order{Products: []Product{{ID: 10}, {ID: 11}}}
	assert.Equal(t, []int64{10, 11}, order.ProductIDs())
}
