package gormstore

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/CameronXie/store-api/internal/repository"
)

const (
	// integrityConstraintViolationClass is the SQLSTATE class shared by every
	// PostgreSQL constraint violation (foreign key, unique, not null, check).
	integrityConstraintViolationClass = "23"

	mysqlErrBadNull             = 1048
	mysqlErrDupEntry            = 1062
	mysqlErrRowIsReferenced     = 1451
	mysqlErrNoReferencedRow     = 1452
	mysqlErrCheckConstraintFail = 3819

	sqliteConstraintFailed = "constraint failed"
)

// translateError wraps a store failure into the repository failure type the
// classification pipeline understands. Already translated failures pass through.
func translateError(resource string, err error) error {
	if err == nil {
		return nil
	}

	var integrityErr *repository.IntegrityError
	var dataAccessErr *repository.DataAccessError
	var notFoundErr *repository.NotFoundError
	if errors.As(err, &integrityErr) || errors.As(err, &dataAccessErr) || errors.As(err, &notFoundErr) {
		return err
	}

	if isIntegrityViolation(err) {
		return &repository.IntegrityError{Resource: resource, Err: err}
	}

	return &repository.DataAccessError{Resource: resource, Err: err}
}

func isIntegrityViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, integrityConstraintViolationClass)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrBadNull, mysqlErrDupEntry, mysqlErrRowIsReferenced, mysqlErrNoReferencedRow, mysqlErrCheckConstraintFail:
			return true
		}
		return false
	}

	// The pure Go SQLite driver reports constraint violations as
	// "constraint failed: FOREIGN KEY constraint failed (787)".
	return strings.Contains(err.Error(), sqliteConstraintFailed)
}
