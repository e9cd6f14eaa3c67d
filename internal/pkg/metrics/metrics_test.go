package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func counterValue(t *testing.T, r *Recorder, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := r.Gather().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for k, v := range labels {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == k && lp.GetValue() == v {
						found = true
						break
					}
				}
				if !found {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecorderCounters(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	r.GrantCommitted("approval")
	r.GrantCommitted("approval")
	r.GrantCommitted("direct")
	r.ReleaseCommitted()
	r.OperationRejected("CAPACITY_EXCEEDED")
	r.DecisionCommitted("APPROVED")
	r.DecisionCommitted("REJECTED")

	if got := counterValue(t, r, "ferme_allocation_grants_total", map[string]string{"origin": "approval"}); got != 2 {
		t.Errorf("grants{approval} = %v, want 2", got)
	}
	if got := counterValue(t, r, "ferme_allocation_grants_total", map[string]string{"origin": "direct"}); got != 1 {
		t.Errorf("grants{direct} = %v, want 1", got)
	}
	if got := counterValue(t, r, "ferme_allocation_releases_total", nil); got != 1 {
		t.Errorf("releases = %v, want 1", got)
	}
	if got := counterValue(t, r, "ferme_allocation_rejections_total", map[string]string{"code": "CAPACITY_EXCEEDED"}); got != 1 {
		t.Errorf("rejections{CAPACITY_EXCEEDED} = %v, want 1", got)
	}
	if got := counterValue(t, r, "ferme_reservation_decisions_total", map[string]string{"outcome": "APPROVED"}); got != 1 {
		t.Errorf("decisions{APPROVED} = %v, want 1", got)
	}
}

func TestRecordersAreIsolated(t *testing.T) {
	t.Parallel()

	a := NewRecorder()
	b := NewRecorder()
	a.ReleaseCommitted()

	if got := counterValue(t, b, "ferme_allocation_releases_total", nil); got != 0 {
		t.Errorf("second recorder releases = %v, want 0", got)
	}
}

func TestHandlerServesScrape(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.GrantCommitted("direct")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ferme_allocation_grants_total") {
		t.Fatal("scrape body missing grants counter")
	}
}
