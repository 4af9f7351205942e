package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tripwise/tripwise/pkg/tdf"
)

// RequestError is a non-success response from the gateway, carrying
// the status code and the most useful message the body offered.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// RecommendationFetcher is the part of the gateway API the form
// controller needs.
type RecommendationFetcher interface {
	FetchRecommendations(ctx context.Context, destination string, preference string) (*tdf.RouteResponse, error)
}

// Client fetches route recommendations from the gateway. One round
// trip per call; no retries, no caching.
type Client struct {
	BaseURL string

	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,

		httpClient: &http.Client{},
	}
}

func (c *Client) FetchRecommendations(ctx context.Context, destination string, preference string) (*tdf.RouteResponse, error) {
	query := url.Values{}
	query.Set("destination", destination)
	query.Set("preference", preference)

	requestURL := fmt.Sprintf("%s/api/route?%s", c.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("Server responded with status: %d", resp.StatusCode)

		var errorBody struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if err := json.Unmarshal(jsonBytes, &errorBody); err == nil {
			if errorBody.Error != "" {
				message = errorBody.Error
			} else if errorBody.Details != "" {
				message = errorBody.Details
			}
		}

		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: message,
		}
	}

	var routeResponse *tdf.RouteResponse
	if err := json.Unmarshal(jsonBytes, &routeResponse); err != nil {
		return nil, err
	}

	return routeResponse, nil
}
