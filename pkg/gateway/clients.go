package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tripwise/tripwise/pkg/location"
	"github.com/tripwise/tripwise/pkg/tdf"
)

// LocationClient talks to the location service. HTTPClient controls
// the request deadline.
type LocationClient struct {
	BaseURL string

	HTTPClient *http.Client
}

func NewLocationClient(baseURL string) *LocationClient {
	return &LocationClient{
		BaseURL: baseURL,

		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (l *LocationClient) GetLocation(ctx context.Context, testIP string) (*location.Record, error) {
	requestURL := fmt.Sprintf("%s/location", l.BaseURL)
	if testIP != "" {
		requestURL = fmt.Sprintf("%s?ip=%s", requestURL, url.QueryEscape(testIP))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("location service responded with status %d", resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var record *location.Record
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, err
	}

	return record, nil
}

// DownstreamError carries the status and raw body of a routing service
// error so the gateway can propagate the details.
type DownstreamError struct {
	Status int
	Body   []byte
}

func (e DownstreamError) Error() string {
	return fmt.Sprintf("routing service responded with status %d", e.Status)
}

// RoutingClient talks to the routing service instances. HTTPClient
// serves recommendation lookups, HealthClient the health probes.
type RoutingClient struct {
	HTTPClient   *http.Client
	HealthClient *http.Client
}

func NewRoutingClient() *RoutingClient {
	return &RoutingClient{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},

		// Health probes get a much shorter deadline than lookups
		HealthClient: &http.Client{Timeout: 1500 * time.Millisecond},
	}
}

type recommendationsResponse struct {
	Recommendations []tdf.Recommendation `json:"recommendations"`
}

func (r *RoutingClient) GetRecommendations(ctx context.Context, instance RoutingInstance, origin tdf.Coordinates, destination tdf.Coordinates, preference string) ([]tdf.Recommendation, error) {
	query := url.Values{}
	query.Set("origin_lat", fmt.Sprintf("%f", origin.Latitude))
	query.Set("origin_lon", fmt.Sprintf("%f", origin.Longitude))
	query.Set("dest_lat", fmt.Sprintf("%f", destination.Latitude))
	query.Set("dest_lon", fmt.Sprintf("%f", destination.Longitude))
	query.Set("preference", preference)

	requestURL := fmt.Sprintf("%s/recommendations?%s", instance.URL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, DownstreamError{
			Status: resp.StatusCode,
			Body:   jsonBytes,
		}
	}

	var recommendations recommendationsResponse
	if err := json.Unmarshal(jsonBytes, &recommendations); err != nil {
		return nil, err
	}

	return recommendations.Recommendations, nil
}

type healthResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
}

func (r *RoutingClient) Healthy(ctx context.Context, instance RoutingInstance) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/health", instance.URL), nil)
	if err != nil {
		return false
	}

	resp, err := r.HealthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}

	var health healthResponse
	if err := json.Unmarshal(jsonBytes, &health); err != nil {
		return false
	}

	return health.Status == "ok"
}
