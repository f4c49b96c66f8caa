// Package nominatim is a minimal client for the OSM Nominatim reverse
// geocoding API. https://nominatim.org/release-docs/latest/api/Reverse/
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	reversePath    = "/reverse"

	userAgent = "tfhive/0.1"
)

type Client struct {
	client  *resty.Client
	baseURL string
}

// Place is the subset of a jsonv2 reverse response the indexer needs. Missing
// address fields are simply absent from the map.
type Place struct {
	PlaceID int64             `json:"place_id"`
	OSMType string            `json:"osm_type"`
	OSMID   json.Number       `json:"osm_id"`
	Name    string            `json:"name"`
	Address map[string]string `json:"address"`
}

func NewClient(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = DefaultConfig
	}

	client := resty.NewWithTransportSettings(cfg.TransportSettings).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent)

	for _, m := range cfg.RequestMiddlewares {
		client.AddRequestMiddleware(m)
	}
	for _, m := range cfg.ResponseMiddlewares {
		client.AddResponseMiddleware(m)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Reverse resolves a coordinate pair to the nearest known place, in English.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	res, err := c.client.R().
		WithContext(ctx).
		SetQueryParams(map[string]string{
			"format":          "jsonv2",
			"lat":             strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":             strconv.FormatFloat(lon, 'f', -1, 64),
			"accept-language": "en",
		}).
		SetResult(&Place{}).
		Get(c.baseURL + reversePath)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("nominatim: reverse lookup returned %s", res.Status())
	}

	return res.Result().(*Place), nil
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration

	TransportSettings *resty.TransportSettings

	RequestMiddlewares  []resty.RequestMiddleware
	ResponseMiddlewares []resty.ResponseMiddleware
}

var DefaultConfig = &ClientConfig{
	Timeout: 15 * time.Second,
	TransportSettings: &resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
	},
}
