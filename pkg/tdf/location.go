package tdf

import "math"

type Coordinates struct {
	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	originLat := c.Latitude * math.Pi / 180
	destinationLat := other.Latitude * math.Pi / 180
	deltaLat := (other.Latitude - c.Latitude) * math.Pi / 180
	deltaLon := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(originLat)*math.Cos(destinationLat)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
