package engivault

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// AnalyticsService exposes usage reporting for the authenticated
// account.
type AnalyticsService struct {
	t *transport
}

// UsageStats reports request counts and response times for the
// authenticated user.
type UsageStats struct {
	// TotalRequests made with this account.
	TotalRequests int `json:"totalRequests"`
	// RequestsToday so far.
	RequestsToday int `json:"requestsToday"`
	// RequestsThisMonth so far.
	RequestsThisMonth int `json:"requestsThisMonth"`
	// AverageResponseTime in ms.
	AverageResponseTime float64 `json:"averageResponseTime"`
	// TopEndpoints in descending order of use.
	TopEndpoints []map[string]any `json:"topEndpoints"`
	// DailyUsage breakdown over the requested window.
	DailyUsage []map[string]any `json:"dailyUsage"`
}

// SubscriptionLimits reports the subscription tier, its limits, and
// current usage.
type SubscriptionLimits struct {
	// Tier name, when reported.
	Tier string `json:"tier,omitempty"`
	// RequestsPerMonth allowed by the tier, when reported.
	RequestsPerMonth int `json:"requestsPerMonth,omitempty"`
	// RequestsThisMonth consumed so far, when reported.
	RequestsThisMonth int `json:"requestsThisMonth,omitempty"`
	// RemainingRequestsThisMonth before the limit trips.
	RemainingRequestsThisMonth int `json:"remainingRequestsThisMonth"`
}

// UsageStats returns usage statistics over the last days. Zero uses
// the server default window (30 days); otherwise days must be within
// [1, 365].
func (s *AnalyticsService) UsageStats(ctx context.Context, days int) (*UsageStats, error) {
	var query map[string]string
	if days != 0 {
		if days < 1 || days > 365 {
			return nil, FieldErrors{{
				Field: "days",
				Err:   "must be between 1 and 365",
			}}
		}
		query = map[string]string{"days": strconv.Itoa(days)}
	}

	data, err := s.t.request(ctx, http.MethodGet, "/analytics/usage", nil, query)
	if err != nil {
		return nil, err
	}

	return decodeResult[UsageStats](data)
}

// SubscriptionLimits returns the current subscription's limits and
// usage.
func (s *AnalyticsService) SubscriptionLimits(ctx context.Context) (*SubscriptionLimits, error) {
	data, err := s.t.request(ctx, http.MethodGet, "/analytics/limits", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[SubscriptionLimits](data)
}

// APIKeyPerformance returns per-key usage and latency figures for
// every API key on the account.
func (s *AnalyticsService) APIKeyPerformance(ctx context.Context) ([]map[string]any, error) {
	data, err := s.t.request(ctx, http.MethodGet, "/analytics/api-keys", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &APIError{
			Message: "Invalid response format: " + err.Error(),
			Err:     ErrAPI,
		}
	}

	return out, nil
}
