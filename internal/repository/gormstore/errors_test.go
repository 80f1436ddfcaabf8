package gormstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/CameronXie/store-api/internal/repository"
)

func TestTranslateError(t *testing.T) {
	existing := &repository.IntegrityError{Resource: OrderResource, Err: errors.New("product reference without id")}

	testCases := map[string]struct {
		err               error
		expectedIntegrity bool
		expectedSame      error
	}{
		"should classify postgres foreign key violation as integrity": {
			err:               &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedIntegrity: true,
		},
		"should classify postgres unique violation as integrity": {
			err:               fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			expectedIntegrity: true,
		},
		"should classify postgres serialization failure as data access": {
			err: &pgconn.PgError{Code: "40001"},
		},
		"should classify mysql missing referenced row as integrity": {
			err:               &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			expectedIntegrity: true,
		},
		"should classify mysql lock wait timeout as data access": {
			err: &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"},
		},
		"should classify sqlite foreign key failure as integrity": {
			err:               errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			expectedIntegrity: true,
		},
		"should classify gorm foreign key sentinel as integrity": {
			err:               gorm.ErrForeignKeyViolated,
			expectedIntegrity: true,
		},
		"should classify cancelled context as data access": {
			err: context.Canceled,
		},
		"should pass translated errors through": {
			err:               existing,
			expectedIntegrity: true,
			expectedSame:      existing,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			result := translateError(CustomerResource, tc.err)

			if tc.expectedSame != nil {
				assert.Same(t, tc.expectedSame, result)
				return
			}

			assert.Equal(t, tc.err.Error(), result.Error())
			assert.ErrorIs(t, result, tc.err)

			var integrityErr *repository.IntegrityError
			var dataAccessErr *repository.DataAccessError
			if tc.expectedIntegrity {
				assert.ErrorAs(t, result, &integrityErr)
				assert.Equal(t, CustomerResource, integrityErr.Resource)
				return
			}

			assert.ErrorAs(t, result, &dataAccessErr)
		})
	}

	assert.NoError(t, translateError(CustomerResource, nil))
}
