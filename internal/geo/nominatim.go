package geo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"

	"tfhive/internal/config"
	"tfhive/internal/core"
	"tfhive/pkg/nominatim"
)

var (
	lookupLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tfhive_geocode_request_latency",
			Help:    "Histogram of Nominatim request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"method", "path", "status_code"},
	)
)

// NominatimGeocoder adapts pkg/nominatim to core.Geocoder. One shared client
// per process; its transport pools and limits connections so a burst of
// travel posts does not hammer the upstream service.
type NominatimGeocoder struct {
	Config *config.Config

	client *nominatim.Client
}

func (g *NominatimGeocoder) Init(_ context.Context) error {
	timeout := time.Duration(g.Config.GeocoderTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = nominatim.DefaultConfig.Timeout
	}

	g.client = nominatim.NewClient(&nominatim.ClientConfig{
		BaseURL: g.Config.GeocoderURL,
		Timeout: timeout,

		TransportSettings: nominatim.DefaultConfig.TransportSettings,

		ResponseMiddlewares: []resty.ResponseMiddleware{metricMiddleware},
	})
	return nil
}

func (g *NominatimGeocoder) Shutdown(_ context.Context) error {
	return g.client.Close()
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (*core.ReverseResult, error) {
	place, err := g.client.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	return &core.ReverseResult{
		OSMType: place.OSMType,
		OSMID:   place.OSMID.String(),
		Address: place.Address,
	}, nil
}

func metricMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	lookupLatency.WithLabelValues(
		response.Request.Method,
		reqURL.Path,
		fmt.Sprintf("%d", response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}
