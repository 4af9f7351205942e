package tdf

// RouteResponse is the merged document the gateway returns for one
// /api/route request.
type RouteResponse struct {
	Origin *Origin `json:"origin,omitempty" groups:"basic"`

	DestinationRequested string       `json:"destination_requested,omitempty" groups:"basic"`
	DestinationCoords    *Coordinates `json:"destination_coords,omitempty" groups:"basic"`

	Preference string `json:"preference,omitempty" groups:"basic"`

	Notes           []string         `json:"notes" groups:"basic"`
	Recommendations []Recommendation `json:"recommendations" groups:"basic"`
}
