package frontend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tripwise/tripwise/pkg/tdf"
)

func testPageRequest(t *testing.T, server *Server, target string, cookie string) (*http.Response, string) {
	t.Helper()

	request := httptest.NewRequest("GET", target, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := server.newApp().Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response, string(body)
}

func TestGetIndex(t *testing.T) {
	server := &Server{Client: &stubFetcher{}}

	response, body := testPageRequest(t, server, "/", "")

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, `<option value="fastest" selected>`)
	require.NotContains(t, body, `<section id="results">`)
}

func TestGetIndexStoredPreference(t *testing.T) {
	server := &Server{Client: &stubFetcher{}}

	_, body := testPageRequest(t, server, "/", "travelPreference=cheapest")

	require.Contains(t, body, `<option value="cheapest" selected>`)
	require.NotContains(t, body, `<option value="fastest" selected>`)
}

func TestGetSearch(t *testing.T) {
	server := &Server{Client: &stubFetcher{
		response: &tdf.RouteResponse{
			Origin: &tdf.Origin{City: "London"},
			Recommendations: []tdf.Recommendation{
				{
					Mode:                     tdf.TransportModeTrain,
					DurationMinutes:          540,
					CostUSD:                  160,
					EnvironmentalImpactCO2Kg: 24.5,
					SourceCloud:              "AWS",
				},
			},
		},
	}}

	response, body := testPageRequest(t, server, "/search?destination=Tokyo&preference=greenest", "")

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, "Detected Origin: London")
	require.Contains(t, body, "🚆 train: 540 minutes, $160.00, CO2: 24.50 kg (Source: AWS)")
	require.Contains(t, body, `value="Tokyo"`)
	require.Contains(t, body, `<option value="greenest" selected>`)

	require.Contains(t, response.Header.Get("Set-Cookie"), "travelPreference=greenest")
}

func TestGetSearchEmptyDestination(t *testing.T) {
	fetcher := &stubFetcher{}
	server := &Server{Client: fetcher}

	response, body := testPageRequest(t, server, "/search?destination=+++&preference=fastest", "")

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, body, "Error: Please enter a destination city.")
	require.Equal(t, 0, fetcher.calls)
}

func TestGetSearchGatewayError(t *testing.T) {
	server := &Server{Client: &stubFetcher{
		err: &RequestError{Status: 503, Message: "Recommendation service is temporarily unavailable"},
	}}

	_, body := testPageRequest(t, server, "/search?destination=london&preference=fastest", "")

	require.Contains(t, body, "Error: Recommendation service is temporarily unavailable")
}

func TestGetIndexUnknownCookiePreference(t *testing.T) {
	server := &Server{Client: &stubFetcher{}}

	_, body := testPageRequest(t, server, "/", "travelPreference=scenic")

	require.Contains(t, body, `<option value="fastest" selected>`)
}
