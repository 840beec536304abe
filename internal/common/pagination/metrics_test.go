package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestGetPageRangeBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page int
		want string
	}{
		{0, "0-9"},
		{9, "0-9"},
		{10, "10-49"},
		{49, "10-49"},
		{50, "50-99"},
		{99, "50-99"},
		{100, "100+"},
		{5000, "100+"},
	}

	for _, tt := range tests {
		if got := getPageRangeBucket(tt.page); got != tt.want {
			t.Errorf("getPageRangeBucket(%d) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestRecordRequest_Gathered(t *testing.T) {
	RecordRequest(200, 3)
	RecordRequest(200, 3)
	RecordError("validation")
	UpdateTotalCount(25)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	reqs, ok := byName["product_pagination_requests_total"]
	if !ok {
		t.Fatal("product_pagination_requests_total not registered")
	}
	found := false
	for _, m := range reqs.GetMetric() {
		labels := make(map[string]string)
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		if labels["status"] == "200" && labels["page_range"] == "0-9" {
			found = true
			if m.GetCounter().GetValue() < 2 {
				t.Errorf("requests counter = %v, want >= 2", m.GetCounter().GetValue())
			}
		}
	}
	if !found {
		t.Error("no requests_total sample with status=200 page_range=0-9")
	}

	gauge, ok := byName["product_total_count"]
	if !ok {
		t.Fatal("product_total_count not registered")
	}
	if got := gauge.GetMetric()[0].GetGauge().GetValue(); got != 25 {
		t.Errorf("product_total_count = %v, want 25", got)
	}
}
