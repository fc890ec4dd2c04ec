package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrConstraintViolation: a write broke a unique, foreign key, check or
	// not-null constraint other than the one the upsert targets.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrNotFoundAfterWrite: the row could not be read back after an upsert.
	ErrNotFoundAfterWrite = errors.New("row not found after write")
	// ErrConnectivity: the database could not be reached.
	ErrConnectivity = errors.New("database unreachable")
)

// database/sql does not export the error returned once DB.Close was called.
const errDBClosedText = "sql: database is closed"

// classify wraps err with the sentinel matching its cause. Errors already
// carrying a sentinel are only prefixed with op.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrNotFoundAfterWrite),
		errors.Is(err, ErrConnectivity):
		return fmt.Errorf("%s: %w", op, err)
	case isConstraintViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	case isConnectivityError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConnectivity, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isUniqueViolation is narrower than isConstraintViolation: only duplicate keys.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exception
		return strings.HasPrefix(pgErr.Code, "08")
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrCantOpen || sqliteErr.Code == sqlite3.ErrIoErr
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if isDBClosed(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func isDBClosed(err error) bool {
	return strings.Contains(err.Error(), errDBClosedText)
}
