package nominatim_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tfhive/pkg/nominatim"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	t.Run("decodes a jsonv2 response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/reverse", r.URL.Path)
			require.Equal(t, "jsonv2", r.URL.Query().Get("format"))
			require.Equal(t, "48.8584", r.URL.Query().Get("lat"))
			require.Equal(t, "2.2945", r.URL.Query().Get("lon"))
			require.Equal(t, "en", r.URL.Query().Get("accept-language"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"place_id": 12345,
				"osm_type": "relation",
				"osm_id":   7444,
				"name":     "Paris",
				"address": map[string]string{
					"city":         "Paris",
					"country_code": "fr",
				},
			})
		}))
		defer server.Close()

		client := nominatim.NewClient(&nominatim.ClientConfig{BaseURL: server.URL})
		defer client.Close() //nolint:errcheck

		place, err := client.Reverse(t.Context(), 48.8584, 2.2945)
		require.NoError(t, err)
		require.Equal(t, int64(12345), place.PlaceID)
		require.Equal(t, "relation", place.OSMType)
		require.Equal(t, "7444", place.OSMID.String())
		require.Equal(t, "Paris", place.Address["city"])
		require.Equal(t, "fr", place.Address["country_code"])
	})

	t.Run("http errors surface", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := nominatim.NewClient(&nominatim.ClientConfig{BaseURL: server.URL})
		defer client.Close() //nolint:errcheck

		_, err := client.Reverse(t.Context(), 0, 0)
		require.Error(t, err)
	})
}
