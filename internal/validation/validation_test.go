package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_NotBlank(t *testing.T) {
	testCases := map[string]struct {
		value    string
		expected Errors
	}{
		"should accept non blank value": {
			value:    "John",
			expected: nil,
		},
		"should reject empty value": {
			value:    "",
			expected: Errors{{Field: "name", Message: "name is required"}},
		},
		"should reject whitespace only value": {
			value:    " \t\n",
			expected: Errors{{Field: "name", Message: "name is required"}},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var errs Errors
			assert.Equal(t, tc.expected, errs.NotBlank("name", tc.value, "name is required"))
		})
	}
}

func TestErrors_CollectsEveryViolation(t *testing.T) {
	var errs Errors
	errs = errs.NotBlank("description", "", "description is required")
	errs = errs.Require("customer", false, "customer is required")
	errs = errs.Require("products", true, "unused")

	require.Len(t, errs, 2)
	assert.Equal(t, []string{"description is required", "customer is required"}, errs.Messages())
	assert.Equal(t, "description: description is required; customer: customer is required", errs.Error())
}

func TestErrors_Err(t *testing.T) {
	var empty Errors
	assert.NoError(t, empty.Err())

	errs := Errors{{Field: "name", Message: "name is required"}}
	err := errs.Err()
	require.Error(t, err)

	var target Errors
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, errs, target)
}
