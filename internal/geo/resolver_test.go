package geo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tfhive/internal/core"
	"tfhive/internal/geo"
)

type fakeGeocoder struct {
	result *core.ReverseResult
	err    error

	lat, lon float64
	calls    int
}

func (f *fakeGeocoder) Reverse(_ context.Context, lat, lon float64) (*core.ReverseResult, error) {
	f.calls++
	f.lat, f.lon = lat, lon
	return f.result, f.err
}

func newResolver(g core.Geocoder) *geo.Resolver {
	return &geo.Resolver{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Geocoder: g,
	}
}

func TestIsTravelfeed(t *testing.T) {
	t.Parallel()

	longBody := strings.Repeat("word ", 241)

	t.Run("tag and long body qualify", func(t *testing.T) {
		t.Parallel()

		require.True(t, geo.IsTravelfeed([]string{"travelfeed", "asia"}, longBody))
	})

	t.Run("short body does not qualify", func(t *testing.T) {
		t.Parallel()

		require.False(t, geo.IsTravelfeed([]string{"travelfeed"}, "too short"))
	})

	t.Run("missing tag does not qualify", func(t *testing.T) {
		t.Parallel()

		require.False(t, geo.IsTravelfeed([]string{"travel"}, longBody))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	body := "Great trip! !steemitworldmap 48.85837 lat 2.294481 long d3scr"

	t.Run("extracts and rounds coordinates", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{result: &core.ReverseResult{OSMType: "node", OSMID: "42"}}
		loc := newResolver(g).Resolve(t.Context(), body)

		require.NotNil(t, loc)
		require.Equal(t, 1, g.calls)
		require.InDelta(t, 48.8584, g.lat, 1e-9)
		require.InDelta(t, 2.2945, g.lon, 1e-9)
		require.Equal(t, "n", *loc.OSMType)
		require.Equal(t, int64(42), *loc.OSMID)
	})

	t.Run("no annotation means no lookup", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{}
		loc := newResolver(g).Resolve(t.Context(), "just a body")

		require.Nil(t, loc)
		require.Zero(t, g.calls)
	})

	t.Run("out of range latitude does not match", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{}
		loc := newResolver(g).Resolve(t.Context(), "!steemitworldmap 91.0 lat 10.0 long")

		require.Nil(t, loc)
		require.Zero(t, g.calls)
	})

	t.Run("lookup failure drops the whole group", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{err: errors.New("boom")}
		loc := newResolver(g).Resolve(t.Context(), body)

		require.Nil(t, loc)
	})

	t.Run("address fields fall back in order", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{result: &core.ReverseResult{
			OSMType: "relation",
			OSMID:   "7444",
			Address: map[string]string{
				"country_code":  "fr",
				"region":        "Île-de-France",
				"town":          "Paris",
				"neighbourhood": "Gros-Caillou",
			},
		}}
		loc := newResolver(g).Resolve(t.Context(), body)

		require.NotNil(t, loc)
		require.Equal(t, "fr", *loc.CountryCode)
		require.Equal(t, "Île-de-France", *loc.Subdivision)
		require.Equal(t, "Paris", *loc.City)
		require.Equal(t, "Gros-Caillou", *loc.Suburb)
	})

	t.Run("oversized place names are discarded", func(t *testing.T) {
		t.Parallel()

		g := &fakeGeocoder{result: &core.ReverseResult{
			OSMType: "way",
			OSMID:   "1",
			Address: map[string]string{
				"state": strings.Repeat("x", 101),
				"city":  "Ok",
			},
		}}
		loc := newResolver(g).Resolve(t.Context(), body)

		require.NotNil(t, loc)
		require.Nil(t, loc.Subdivision)
		require.Equal(t, "Ok", *loc.City)
	})
}
