package pagination_test

import (
	"encoding/json"
	"testing"

	"catalog-api/internal/common/pagination"
)

// The serialized response must carry items plus the flattened metadata
// fields: page, size, total_elements and total_pages.
func TestResponse_JSONShape(t *testing.T) {
	t.Parallel()

	resp := pagination.NewResponse(
		[]string{"a", "b"},
		pagination.NewMetadata(pagination.Params{Page: 2, Size: 10}, 25),
	)

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"items", "page", "size", "total_elements", "total_pages"} {
		if _, ok := got[key]; !ok {
			t.Errorf("response JSON missing %q: %s", key, raw)
		}
	}
	if string(got["page"]) != "2" {
		t.Errorf("page = %s, want 2", got["page"])
	}
	if string(got["total_pages"]) != "3" {
		t.Errorf("total_pages = %s, want 3", got["total_pages"])
	}
}

func TestNewMetadata_EmptyCollection(t *testing.T) {
	t.Parallel()

	md := pagination.NewMetadata(pagination.Params{Page: 0, Size: 10}, 0)
	if md.TotalElements != 0 || md.TotalPages != 0 {
		t.Fatalf("empty collection: got total=%d pages=%d, want 0/0", md.TotalElements, md.TotalPages)
	}
}
