package tdf

// Origin is the caller's detected starting location as reported by the
// location service.
type Origin struct {
	IPAddress   string `json:"ip_address,omitempty" groups:"basic"`
	City        string `json:"city" groups:"basic"`
	RegionName  string `json:"region_name,omitempty" groups:"basic"`
	CountryName string `json:"country_name,omitempty" groups:"basic"`

	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
}

func (o *Origin) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
	}
}
