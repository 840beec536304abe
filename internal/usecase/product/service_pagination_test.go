package product_test

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
	"catalog-api/internal/usecase/product"
	"catalog-api/tests/fixtures"
)

type mockProductRepo struct {
	products []*entity.Product
	listErr  error
	countErr error

	createErr error
	existsSKU bool
	existsErr error
	updateErr error
	deleteErr error

	created []*entity.Product
	updated []*entity.Product
	deleted []int64
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) ListPaginated(_ context.Context, offset, limit int) ([]*entity.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if offset >= len(m.products) {
		return []*entity.Product{}, nil
	}
	end := offset + limit
	if end > len(m.products) {
		end = len(m.products)
	}
	return m.products[offset:end], nil
}

func (m *mockProductRepo) Get(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *entity.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = int64(len(m.products) + 1)
	m.created = append(m.created, p)
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, p *entity.Product) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, p)
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockProductRepo) ExistsBySKU(_ context.Context, _ string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existsSKU, nil
}

// seedProducts builds a stored collection: shared fixtures with the IDs a
// repository would have assigned.
func seedProducts(n int) []*entity.Product {
	products := fixtures.GenerateProducts(fixtures.ProductOptions{Count: n})
	for i, p := range products {
		p.ID = int64(i + 1)
	}
	return products
}

func TestService_ListPaginated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		totalProducts int
		params        pagination.Params
		wantItems     int
		wantFirstID   int64
		wantTotal     int64
		wantPages     int
	}{
		{
			name:          "first page of 25 elements",
			totalProducts: 25,
			params:        pagination.Params{Page: 0, Size: 10},
			wantItems:     10,
			wantFirstID:   1,
			wantTotal:     25,
			wantPages:     3,
		},
		{
			name:          "partial last page (elements 20-24)",
			totalProducts: 25,
			params:        pagination.Params{Page: 2, Size: 10},
			wantItems:     5,
			wantFirstID:   21,
			wantTotal:     25,
			wantPages:     3,
		},
		{
			name:          "page beyond the collection is empty, not an error",
			totalProducts: 25,
			params:        pagination.Params{Page: 9, Size: 10},
			wantItems:     0,
			wantTotal:     25,
			wantPages:     3,
		},
		{
			name:          "empty collection has zero pages",
			totalProducts: 0,
			params:        pagination.Params{Page: 0, Size: 10},
			wantItems:     0,
			wantTotal:     0,
			wantPages:     0,
		},
		{
			name:          "exact page boundary",
			totalProducts: 20,
			params:        pagination.Params{Page: 1, Size: 10},
			wantItems:     10,
			wantFirstID:   11,
			wantTotal:     20,
			wantPages:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockProductRepo{products: seedProducts(tt.totalProducts)}
			svc := &product.Service{Repo: repo}

			result, err := svc.ListPaginated(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("ListPaginated: %v", err)
			}

			if len(result.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(result.Items), tt.wantItems)
			}
			if tt.wantItems > 0 && result.Items[0].ID != tt.wantFirstID {
				t.Errorf("first item ID = %d, want %d", result.Items[0].ID, tt.wantFirstID)
			}
			if result.Pagination.TotalElements != tt.wantTotal {
				t.Errorf("total = %d, want %d", result.Pagination.TotalElements, tt.wantTotal)
			}
			if result.Pagination.TotalPages != tt.wantPages {
				t.Errorf("total pages = %d, want %d", result.Pagination.TotalPages, tt.wantPages)
			}
			if result.Pagination.Page != tt.params.Page || result.Pagination.Size != tt.params.Size {
				t.Errorf("metadata echoes wrong params: %+v", result.Pagination)
			}
			if len(result.Items) > tt.params.Size {
				t.Errorf("items.length %d exceeds page size %d", len(result.Items), tt.params.Size)
			}
		})
	}
}

func TestService_ListPaginated_Idempotent(t *testing.T) {
	t.Parallel()

	repo := &mockProductRepo{products: seedProducts(25)}
	svc := &product.Service{Repo: repo}
	params := pagination.Params{Page: 1, Size: 10}

	first, err := svc.ListPaginated(context.Background(), params)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.ListPaginated(context.Background(), params)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.Pagination != second.Pagination {
		t.Errorf("metadata differs between identical calls: %+v vs %+v",
			first.Pagination, second.Pagination)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].ID != second.Items[i].ID {
			t.Errorf("item %d differs: %d vs %d", i, first.Items[i].ID, second.Items[i].ID)
		}
	}
}

func TestService_ListPaginated_Errors(t *testing.T) {
	t.Parallel()

	t.Run("count failure propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("count failed")
		svc := &product.Service{Repo: &mockProductRepo{countErr: boom}}

		_, err := svc.ListPaginated(context.Background(), pagination.Params{Page: 0, Size: 10})
		if !errors.Is(err, boom) {
			t.Fatalf("got err=%v, want wrapped count error", err)
		}
	})

	t.Run("list failure propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("list failed")
		svc := &product.Service{Repo: &mockProductRepo{products: seedProducts(5), listErr: boom}}

		_, err := svc.ListPaginated(context.Background(), pagination.Params{Page: 0, Size: 10})
		if !errors.Is(err, boom) {
			t.Fatalf("got err=%v, want wrapped list error", err)
		}
	})

	t.Run("storage unavailability is preserved through wrapping", func(t *testing.T) {
		t.Parallel()

		svc := &product.Service{Repo: &mockProductRepo{countErr: repository.ErrUnavailable}}

		_, err := svc.ListPaginated(context.Background(), pagination.Params{Page: 0, Size: 10})
		if !errors.Is(err, repository.ErrUnavailable) {
			t.Fatalf("got err=%v, want ErrUnavailable to survive wrapping", err)
		}
	})
}
