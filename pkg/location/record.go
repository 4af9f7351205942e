package location

// Record is the wire format of a /location response. Latitude and
// Longitude are pointers so that a provider response missing them is
// distinguishable from coordinates at 0,0.
type Record struct {
	IP          string   `json:"ip,omitempty"`
	City        string   `json:"city"`
	RegionName  string   `json:"region_name,omitempty"`
	CountryName string   `json:"country_name,omitempty"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Warning string `json:"warning,omitempty"`
}

func floatPtr(value float64) *float64 {
	return &value
}

// DefaultRecord is returned whenever the provider cannot be used, with
// a warning explaining why.
func DefaultRecord(warning string) *Record {
	return &Record{
		City:        "New York (Default)",
		RegionName:  "New York",
		CountryName: "United States",
		Latitude:    floatPtr(40.7128),
		Longitude:   floatPtr(-74.0060),

		Warning: warning,
	}
}
