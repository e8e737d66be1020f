package engivault_test

import (
	"errors"
	"net/http"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	engivault "github.com/Luqman-Ismat/engivault-go"
)

func usageStatsData() map[string]any {
	return map[string]any{
		"totalRequests":       1200,
		"requestsToday":       14,
		"requestsThisMonth":   340,
		"averageResponseTime": 120.5,
		"topEndpoints": []any{
			map[string]any{"endpoint": "/api/v1/hydraulics/pressure-drop", "count": 800},
		},
		"dailyUsage": []any{
			map[string]any{"date": "2026-08-30", "count": 40},
		},
	}
}

func TestAnalytics_UsageStats(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeEnvelope(t, w, usageStatsData())
	}))

	got, err := c.Analytics.UsageStats(t.Context(), 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotPath != "/analytics/usage" {
		t.Errorf("path = %q, want /analytics/usage", gotPath)
	}
	if gotQuery != "days=7" {
		t.Errorf("query = %q, want days=7", gotQuery)
	}
	if got.TotalRequests != 1200 {
		t.Errorf("TotalRequests = %d, want 1200", got.TotalRequests)
	}

	wantTop := []map[string]any{
		{"endpoint": "/api/v1/hydraulics/pressure-drop", "count": float64(800)},
	}
	if diff := cmp.Diff(wantTop, got.TopEndpoints); diff != "" {
		t.Errorf("TopEndpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalytics_UsageStatsDefaultWindow(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(t, w, usageStatsData())
	}))

	if _, err := c.Analytics.UsageStats(t.Context(), 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// Zero means the server default; no days parameter at all.
	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
}

func TestAnalytics_UsageStatsDaysOutOfRange(t *testing.T) {
	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for _, days := range []int{-1, 366, 400} {
		_, err := c.Analytics.UsageStats(t.Context(), days)

		var fields engivault.FieldErrors
		if !errors.As(err, &fields) {
			t.Fatalf("days=%d: expected FieldErrors, got: %v", days, err)
		}
		if !slices.Contains(fields.Fields(), "days") {
			t.Errorf("days=%d: offending fields %v do not include days", days, fields.Fields())
		}
	}
	if calls != 0 {
		t.Errorf("validation failure must not reach the network, got %d calls", calls)
	}
}

func TestAnalytics_SubscriptionLimits(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		// Only the remaining count is guaranteed; the rest may be
		// absent depending on the tier.
		writeEnvelope(t, w, map[string]any{
			"remainingRequestsThisMonth": 660,
		})
	}))

	got, err := c.Analytics.SubscriptionLimits(t.Context())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotPath != "/analytics/limits" {
		t.Errorf("path = %q, want /analytics/limits", gotPath)
	}
	if got.RemainingRequestsThisMonth != 660 {
		t.Errorf("RemainingRequestsThisMonth = %d, want 660", got.RemainingRequestsThisMonth)
	}
	if got.Tier != "" {
		t.Errorf("Tier = %q, want empty", got.Tier)
	}
}

func TestAnalytics_APIKeyPerformance(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(t, w, []any{
			map[string]any{"keyId": "k1", "requests": 900},
			map[string]any{"keyId": "k2", "requests": 300},
		})
	}))

	got, err := c.Analytics.APIKeyPerformance(t.Context())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotPath != "/analytics/api-keys" {
		t.Errorf("path = %q, want /analytics/api-keys", gotPath)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0]["keyId"] != "k1" {
		t.Errorf("first keyId = %v, want k1", got[0]["keyId"])
	}
}
