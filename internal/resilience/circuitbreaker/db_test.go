package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"catalog-api/internal/repository"
)

func TestDBCircuitBreaker_PassesThroughHealthyQueries(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	dcb := NewDBCircuitBreaker(db)
	rows, err := dcb.QueryContext(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("QueryContext: %v", err)
	}
	_ = rows.Close()

	if dcb.IsOpen() {
		t.Fatal("breaker must stay closed on success")
	}
}

func TestDBCircuitBreaker_OpensAndFailsFast(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	boom := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT 1").WillReturnError(boom)
	}

	cfg := Config{
		Name:             "test-db",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
	dcb := NewDBCircuitBreakerWithConfig(db, cfg)

	for i := 0; i < 5; i++ {
		if _, err := dcb.QueryContext(context.Background(), "SELECT 1"); err == nil {
			t.Fatalf("attempt %d: expected error", i)
		}
	}
	if !dcb.IsOpen() {
		t.Fatal("breaker should be open after 5 consecutive failures")
	}

	// Open circuit: no expectation queued, call must not reach the database.
	_, err := dcb.QueryContext(context.Background(), "SELECT 1")
	if !errors.Is(err, repository.ErrUnavailable) {
		t.Fatalf("open circuit: got err=%v, want ErrUnavailable", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMapBreakerErr_PassesQueryErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("syntax error")
	if got := mapBreakerErr(boom); !errors.Is(got, boom) {
		t.Fatalf("query error mangled: %v", got)
	}
	if errors.Is(mapBreakerErr(boom), repository.ErrUnavailable) {
		t.Fatal("query errors must not be reported as unavailability")
	}
}
