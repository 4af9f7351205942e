package tdf

// Recommendation is a single transport option produced by a routing
// instance. All numeric fields are estimates from the instance's own
// model and are passed through verbatim.
type Recommendation struct {
	ID   string        `json:"id,omitempty" groups:"basic"`
	Mode TransportMode `json:"mode" groups:"basic"`

	DurationMinutes          int     `json:"duration_minutes" groups:"basic"`
	CostUSD                  float64 `json:"cost_usd" groups:"basic"`
	EnvironmentalImpactCO2Kg float64 `json:"environmental_impact_co2_kg" groups:"basic"`
	EstimatedDistanceKm      float64 `json:"estimated_distance_km,omitempty" groups:"basic"`

	SourceCloud string `json:"source_cloud,omitempty" groups:"basic"`
}
