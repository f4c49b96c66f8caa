// Package geo conditionally enriches travel posts with a reverse-geocoded
// place hierarchy. Enrichment is best effort: any failure leaves the whole
// geo group absent and the transform continues.
package geo

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"

	"tfhive/internal/core"
)

const (
	travelTag    = "travelfeed"
	minWordCount = 240

	// maxFieldLen guards the varchar(100) place columns.
	maxFieldLen = 100
)

// coordPattern matches the steemitworldmap annotation embedded in post
// bodies: "!steemitworldmap <lat> lat <long> long".
var coordPattern = regexp.MustCompile(`!\bsteemitworldmap\b\s((?:[-+]?(?:[1-8]?\d(?:\.\d+)?|90(?:\.0+)?)))\s\blat\b\s((?:[-+]?(?:180(?:\.0+)?|(?:(?:1[0-7]\d)|(?:[1-9]?\d))(?:\.\d+)?)))\s\blong\b`)

// Ordered fallback fields per place level; first non-empty wins.
var (
	subdivisionFields = []string{"state", "region", "state_district", "county"}
	cityFields        = []string{"city", "town"}
	suburbFields      = []string{"city_district", "suburb", "neighbourhood"}
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tfhive_geocode_lookups_total",
		Help: "The total number of reverse geocode lookups",
	}, []string{"status"})
)

// Location is a fully resolved geo group.
type Location struct {
	Latitude  float64
	Longitude float64

	OSMType     *string
	OSMID       *int64
	CountryCode *string
	Subdivision *string
	City        *string
	Suburb      *string
}

// IsTravelfeed reports whether a post qualifies for geo enrichment: it
// carries the travelfeed tag and its body has more than 240 words.
func IsTravelfeed(tags []string, body string) bool {
	return lo.Contains(tags, travelTag) && len(strings.Split(body, " ")) > minWordCount
}

type Resolver struct {
	Logger   *slog.Logger
	Geocoder core.Geocoder
}

func (r *Resolver) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "geo.Resolver")
	return nil
}

// Resolve scans body for an embedded coordinate pair and reverse-geocodes the
// first match. Returns nil when no pair is present or the lookup failed; a
// degraded post is indistinguishable from one with no location.
func (r *Resolver) Resolve(ctx context.Context, body string) *Location {
	m := coordPattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}

	lat, latErr := strconv.ParseFloat(m[1], 64)
	lon, lonErr := strconv.ParseFloat(m[2], 64)
	if latErr != nil || lonErr != nil {
		return nil
	}

	// Precision of 4 is exact enough.
	lat = round4(lat)
	lon = round4(lon)

	result, err := r.Geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		lookups.WithLabelValues("error").Inc()
		r.Logger.Warn("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return nil
	}
	lookups.WithLabelValues("ok").Inc()

	loc := &Location{
		Latitude:  lat,
		Longitude: lon,

		OSMType:     placeTypeCode(result.OSMType),
		OSMID:       placeID(result.OSMID),
		CountryCode: limited(result.Address["country_code"]),
		Subdivision: firstNonEmpty(result.Address, subdivisionFields),
		City:        firstNonEmpty(result.Address, cityFields),
		Suburb:      firstNonEmpty(result.Address, suburbFields),
	}
	return loc
}

// firstNonEmpty picks the first non-empty field of ordered from the address
// map, discarding oversized values.
func firstNonEmpty(address map[string]string, ordered []string) *string {
	for _, field := range ordered {
		if v := address[field]; v != "" {
			return limited(v)
		}
	}
	return nil
}

func limited(v string) *string {
	if v == "" || len(v) > maxFieldLen {
		return nil
	}
	return &v
}

// placeTypeCode shortens an osm_type name ("node", "way", "relation") to its
// single-character code.
func placeTypeCode(osmType string) *string {
	if osmType == "" {
		return nil
	}
	code := osmType[:1]
	return &code
}

func placeID(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
