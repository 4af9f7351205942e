package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeocoderLookup(t *testing.T) {
	geocoder := NewGeocoder()

	coordinates, found := geocoder.Lookup("London")
	require.True(t, found)
	require.InDelta(t, 51.5074, coordinates.Latitude, 0.001)
	require.InDelta(t, -0.1278, coordinates.Longitude, 0.001)

	_, found = geocoder.Lookup("Atlantis")
	require.False(t, found)
}

func TestGeocoderLookupCaseInsensitive(t *testing.T) {
	geocoder := NewGeocoder()

	_, found := geocoder.Lookup("NEW YORK")
	require.True(t, found)
}

func TestGeocoderLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,latitude,longitude\nBerlin,52.5200,13.4050\n"), 0644))

	geocoder := NewGeocoder()
	require.NoError(t, geocoder.LoadCSV(path))

	coordinates, found := geocoder.Lookup("berlin")
	require.True(t, found)
	require.InDelta(t, 52.52, coordinates.Latitude, 0.001)

	// The CSV replaces the built-in table
	_, found = geocoder.Lookup("london")
	require.False(t, found)
}
