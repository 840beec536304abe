package product_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/handler/http/product"
	prodUC "catalog-api/internal/usecase/product"
)

func TestGetHandler(t *testing.T) {
	svc := seededService(t, 3)
	handler := product.GetHandler{Svc: svc}

	t.Run("existing product", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/2", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var dto product.DTO
		if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if dto.ID != 2 || dto.Name != "Product 01" {
			t.Errorf("got %+v, want ID=2 Name=Product 01", dto)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/999", nil))

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		h := product.GetHandler{Svc: &prodUC.Service{Repo: unavailableRepo{}}}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/1", nil))

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rr.Code)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		handler := product.CreateHandler{Svc: seededService(t, 0)}

		body := `{"name":"Webcam","sku":"CAM-4K-01","description":"4K webcam","price_cents":8900}`
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
		}
		var dto product.DTO
		if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if dto.ID == 0 {
			t.Error("created product has no ID")
		}
		if dto.SKU != "CAM-4K-01" {
			t.Errorf("sku = %q", dto.SKU)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		handler := product.CreateHandler{Svc: seededService(t, 0)}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"No SKU"}`)))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		handler := product.CreateHandler{Svc: seededService(t, 0)}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{not json`)))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		handler := product.CreateHandler{Svc: seededService(t, 1)}

		body := `{"name":"Clone","sku":"SKU-0000","price_cents":100}`
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

		if rr.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rr.Code)
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc := seededService(t, 1)
		handler := product.UpdateHandler{Svc: svc}

		body := `{"name":"Renamed","price_cents":555}`
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/products/1", strings.NewReader(body)))

		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204: %s", rr.Code, rr.Body.String())
		}

		got, err := svc.Get(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 1)
		if err != nil {
			t.Fatalf("Get after update: %v", err)
		}
		if got.Name != "Renamed" || got.PriceCents != 555 {
			t.Errorf("update not applied: %+v", got)
		}
		if got.SKU != "SKU-0000" {
			t.Errorf("untouched SKU changed to %q", got.SKU)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		handler := product.UpdateHandler{Svc: seededService(t, 0)}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/products/7", strings.NewReader(`{"name":"X"}`)))

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := product.UpdateHandler{Svc: seededService(t, 1)}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/products/zero", strings.NewReader(`{}`)))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		svc := seededService(t, 2)
		handler := product.DeleteHandler{Svc: svc}

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rr.Code)
		}

		if _, err := svc.Get(req.Context(), 1); err == nil {
			t.Error("product still retrievable after delete")
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := product.DeleteHandler{Svc: seededService(t, 1)}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/products/-4", nil))

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rr.Code)
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		handler := product.DeleteHandler{Svc: &prodUC.Service{Repo: unavailableRepo{}}}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/products/1", nil))

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rr.Code)
		}
	})
}

func TestRegister_Routes(t *testing.T) {
	mux := http.NewServeMux()
	svc := seededService(t, 3)
	product.Register(mux, svc, pagination.DefaultConfig(), slog.New(slog.DiscardHandler))

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/products", "", http.StatusOK},
		{http.MethodGet, "/products/1", "", http.StatusOK},
		{http.MethodPost, "/products", `{"name":"N","sku":"NEW-1","price_cents":1}`, http.StatusCreated},
		{http.MethodPut, "/products/1", `{"name":"Renamed"}`, http.StatusNoContent},
		{http.MethodDelete, "/products/2", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}
