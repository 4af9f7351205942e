package gateway

import (
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/tdf"
)

type cityRecord struct {
	Name      string  `csv:"name"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
}

// Geocoder resolves destination city names to coordinates from a
// static table. A stand-in for a real geocoding provider.
type Geocoder struct {
	cities map[string]tdf.Coordinates
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		cities: map[string]tdf.Coordinates{
			"new york":    {Latitude: 40.7128, Longitude: -74.0060},
			"los angeles": {Latitude: 34.0522, Longitude: -118.2437},
			"london":      {Latitude: 51.5074, Longitude: -0.1278},
			"tokyo":       {Latitude: 35.6895, Longitude: 139.6917},
			"sydney":      {Latitude: -33.8688, Longitude: 151.2093},
			"kolkata":     {Latitude: 22.5726, Longitude: 88.3639},
			"mumbai":      {Latitude: 19.0760, Longitude: 72.8777},
		},
	}
}

// LoadCSV replaces the built-in table with records from a CSV file of
// name,latitude,longitude rows.
func (g *Geocoder) LoadCSV(path string) error {
	csvBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var records []cityRecord
	if err := gocsv.UnmarshalBytes(csvBytes, &records); err != nil {
		return err
	}

	cities := map[string]tdf.Coordinates{}
	for _, record := range records {
		cities[strings.ToLower(record.Name)] = tdf.Coordinates{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		}
	}

	g.cities = cities

	log.Info().Int("cities", len(cities)).Str("path", path).Msg("Loaded geocoding table")

	return nil
}

func (g *Geocoder) Lookup(cityName string) (tdf.Coordinates, bool) {
	coordinates, found := g.cities[strings.ToLower(cityName)]
	return coordinates, found
}
