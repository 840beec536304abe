package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"catalog-api/internal/repository"
)

// DBCircuitBreaker wraps a database connection with circuit breaker
// protection. It satisfies the repository executor contract, so repositories
// can run on top of it without knowing about the breaker.
//
// When the circuit is open, calls fail fast with repository.ErrUnavailable
// instead of hitting the database.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// NewDBCircuitBreaker creates a new database circuit breaker with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(DBConfig()),
		db: db,
	}
}

// NewDBCircuitBreakerWithConfig creates a database circuit breaker with a
// custom configuration.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext executes a query with circuit breaker protection.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return result.(sql.Result), nil
}

// QueryRowContext executes a query that returns at most one row.
// sql.Row defers its error until Scan, so the breaker cannot observe it
// here; protection for single-row queries is limited to fail-fast rejection
// while the circuit is open.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying database connection.
// This should only be used for operations that don't need circuit breaker
// protection, such as health checks.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}

// mapBreakerErr converts gobreaker rejections into the repository's
// unavailability sentinel; real query errors pass through unchanged.
func mapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return err
}
