package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fakeLocationService(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/location", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func fakeRoutingService(t *testing.T, healthy bool, recommendationsHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"status": "ok", "source": "GCP"}`)
	})
	mux.HandleFunc("/recommendations", recommendationsHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func defaultLocationHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, `{"ip": "81.2.69.160", "city": "London", "latitude": 51.5074, "longitude": -0.1278}`)
}

func defaultRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, `{"recommendations": [
		{"id": "train-1-GCP-123", "mode": "train", "duration_minutes": 540,
		 "cost_usd": 160.0, "environmental_impact_co2_kg": 24.5,
		 "estimated_distance_km": 9560.0, "source_cloud": "GCP"}
	]}`)
}

func newTestServer(locationURL string, routingURLs ...string) *Server {
	var instances []RoutingInstance
	for _, url := range routingURLs {
		instances = append(instances, RoutingInstance{Identifier: url, URL: url})
	}

	return &Server{
		Geocoder:  NewGeocoder(),
		Instances: instances,

		LocationClient: NewLocationClient(locationURL),
		RoutingClient:  NewRoutingClient(),
	}
}

func testGatewayRequest(t *testing.T, server *Server, target string) (int, map[string]any) {
	t.Helper()

	app := server.newApp()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	jsonBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &body))

	return resp.StatusCode, body
}

func TestGetRouteMissingDestination(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route")

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Destination city parameter ('destination') is required", body["error"])
}

func TestGetRouteUnknownDestination(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route?destination=Atlantis")

	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Could not find coordinates for destination city: Atlantis", body["error"])
}

func TestGetRoute(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL),
		"/api/route?destination=tokyo&preference=greenest")

	require.Equal(t, http.StatusOK, status)

	origin, ok := body["origin"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "London", origin["city"])
	require.Equal(t, "81.2.69.160", origin["ip_address"])

	require.Equal(t, "tokyo", body["destination_requested"])
	require.Equal(t, "greenest", body["preference"])

	destinationCoords, ok := body["destination_coords"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 35.6895, destinationCoords["latitude"].(float64), 0.001)

	require.Empty(t, body["notes"])

	recommendations, ok := body["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recommendations, 1)

	first := recommendations[0].(map[string]any)
	require.Equal(t, "train", first["mode"])
	require.Equal(t, "GCP", first["source_cloud"])
}

func TestGetRouteLocationWarningBecomesNote(t *testing.T) {
	location := fakeLocationService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city": "New York (Default)", "latitude": 40.7128, "longitude": -74.0060,
			"warning": "Location API key not configured. Returning default location."}`)
	})
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route?destination=london")

	require.Equal(t, http.StatusOK, status)

	notes, ok := body["notes"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 1)
	require.Equal(t, "Location API key not configured. Returning default location.", notes[0])
}

func TestGetRouteLocationUnreachableFallsBackToDefaultOrigin(t *testing.T) {
	location := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	location.Close()

	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route?destination=tokyo")

	require.Equal(t, http.StatusOK, status)

	origin, ok := body["origin"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "London (Default Origin)", origin["city"])

	notes, ok := body["notes"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 1)
	require.Contains(t, notes[0], "Could not contact Location Service")
}

func TestGetRouteForwardsTestIP(t *testing.T) {
	var receivedIP string

	location := fakeLocationService(t, func(w http.ResponseWriter, r *http.Request) {
		receivedIP = r.URL.Query().Get("ip")
		defaultLocationHandler(w, r)
	})
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	status, _ := testGatewayRequest(t, newTestServer(location.URL, routing.URL),
		"/api/route?destination=london&test_ip=81.2.69.160")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "81.2.69.160", receivedIP)
}

func TestGetRouteLocationTimeout(t *testing.T) {
	location := fakeLocationService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		defaultLocationHandler(w, r)
	})
	routing := fakeRoutingService(t, true, defaultRecommendationsHandler)

	server := newTestServer(location.URL, routing.URL)
	server.LocationClient.HTTPClient = &http.Client{Timeout: 50 * time.Millisecond}

	status, body := testGatewayRequest(t, server, "/api/route?destination=london")

	require.Equal(t, http.StatusGatewayTimeout, status)
	require.Equal(t, "Failed to get origin location: Request timed out", body["error"])
}

func TestGetRouteRoutingTimeout(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		defaultRecommendationsHandler(w, r)
	})

	server := newTestServer(location.URL, routing.URL)
	server.RoutingClient.HTTPClient = &http.Client{Timeout: 50 * time.Millisecond}

	status, body := testGatewayRequest(t, server, "/api/route?destination=london")

	require.Equal(t, http.StatusGatewayTimeout, status)
	require.Equal(t, "Fetching recommendations timed out", body["error"])
}

func TestGetRouteUnknownPreferencePassedThrough(t *testing.T) {
	var forwarded string

	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, func(w http.ResponseWriter, r *http.Request) {
		forwarded = r.URL.Query().Get("preference")
		defaultRecommendationsHandler(w, r)
	})

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL),
		"/api/route?destination=london&preference=scenic")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "scenic", body["preference"])
	require.Equal(t, "scenic", forwarded)
}

func TestGetRouteNoHealthyInstances(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, false, defaultRecommendationsHandler)

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route?destination=london")

	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "Recommendation service is temporarily unavailable", body["error"])
}

func TestGetRouteDownstreamErrorPropagated(t *testing.T) {
	location := fakeLocationService(t, defaultLocationHandler)
	routing := fakeRoutingService(t, true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "backend unavailable"}`)
	})

	status, body := testGatewayRequest(t, newTestServer(location.URL, routing.URL), "/api/route?destination=london")

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "Failed to get recommendations", body["error"])
	require.Equal(t, "backend unavailable", body["details"])
}

func TestGetStatsWithoutDatabase(t *testing.T) {
	status, body := testGatewayRequest(t, newTestServer("http://127.0.0.1:0"), "/api/stats")

	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "Search log is not configured", body["error"])
}

func TestGetVersion(t *testing.T) {
	status, body := testGatewayRequest(t, newTestServer("http://127.0.0.1:0"), "/api/version")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "v0.1", body["version"])
}
