package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const defaultIPStackBaseURL = "http://api.ipstack.com" // free tier is http only

// ProviderError is an error reported inside an otherwise successful
// IPStack response body.
type ProviderError struct {
	Info string
}

func (e ProviderError) Error() string {
	return e.Info
}

type IPStackClient struct {
	AccessKey string
	BaseURL   string

	httpClient *http.Client
}

func NewIPStackClient(accessKey string, httpClient *http.Client) *IPStackClient {
	return &IPStackClient{
		AccessKey: accessKey,
		BaseURL:   defaultIPStackBaseURL,

		httpClient: httpClient,
	}
}

type ipstackResponse struct {
	IP          string   `json:"ip"`
	City        string   `json:"city"`
	RegionName  string   `json:"region_name"`
	CountryName string   `json:"country_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Success *bool `json:"success"`
	Error   struct {
		Info string `json:"info"`
	} `json:"error"`
}

// Lookup resolves an IP address ("check" for the caller's own) against
// IPStack. Transient transport failures are retried with exponential
// backoff; provider-level errors are returned immediately.
func (i *IPStackClient) Lookup(ctx context.Context, ipAddress string) (*Record, error) {
	requestURL := fmt.Sprintf(
		"%s/%s?access_key=%s&fields=ip,city,region_name,country_name,latitude,longitude",
		i.BaseURL, ipAddress, i.AccessKey,
	)

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)

	response, err := backoff.RetryWithData(func() (*ipstackResponse, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := i.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		var ipstackResp ipstackResponse
		if err := json.Unmarshal(jsonBytes, &ipstackResp); err != nil {
			return nil, backoff.Permanent(err)
		}

		// IPStack reports its own errors in a 200 body
		if (ipstackResp.Success != nil && !*ipstackResp.Success) || ipstackResp.Latitude == nil {
			info := ipstackResp.Error.Info
			if info == "" {
				info = "Unknown IPStack API error"
			}
			return nil, backoff.Permanent(ProviderError{Info: info})
		}

		return &ipstackResp, nil
	}, retryBackoff)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("ip", response.IP).Str("city", response.City).Msg("Resolved location")

	return &Record{
		IP:          response.IP,
		City:        response.City,
		RegionName:  response.RegionName,
		CountryName: response.CountryName,
		Latitude:    response.Latitude,
		Longitude:   response.Longitude,
	}, nil
}
