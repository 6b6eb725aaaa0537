package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPProvider calls a JSON geocoding endpoint:
//
//	GET {base}?q={query}&api_key={key}
//	200 {"status": "ok", "lat": 35.51, "lon": 24.02}
//
// Any non-200 answer maps to [StatusError]; a 200 without coordinates maps
// to [StatusZeroResults].
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type providerResponse struct {
	Status string   `json:"status"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

func (provider *HTTPProvider) Geocode(context context.Context, query string) (Outcome, error) {
	endpoint, err := url.Parse(provider.baseURL)
	if err != nil {
		return Outcome{}, fmt.Errorf("geocode: bad provider url: %w", err)
	}

	params := endpoint.Query()
	params.Set("q", query)
	if provider.apiKey != "" {
		params.Set("api_key", provider.apiKey)
	}
	endpoint.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("geocode: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := provider.client.Do(request)
	if err != nil {
		return Outcome{}, fmt.Errorf("geocode: provider unreachable: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Outcome{Status: StatusError}, nil
	}

	var decoded providerResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return Outcome{Status: StatusError}, nil
	}

	if decoded.Status != StatusOK || decoded.Lat == nil || decoded.Lon == nil {
		status := decoded.Status
		if status == "" || status == StatusOK {
			status = StatusZeroResults
		}
		return Outcome{Status: status}, nil
	}

	return Outcome{Status: StatusOK, Lat: decoded.Lat, Lon: decoded.Lon}, nil
}
