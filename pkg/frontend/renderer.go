package frontend

import (
	"fmt"

	"github.com/tripwise/tripwise/pkg/tdf"
)

const noRecommendationsMessage = "No recommendations found matching your criteria."

var modeIcons = map[tdf.TransportMode]string{
	tdf.TransportModeCar:     "🚗",
	tdf.TransportModeBus:     "🚌",
	tdf.TransportModeTrain:   "🚆",
	tdf.TransportModeBicycle: "🚲",
	tdf.TransportModeWalking: "🚶",
	tdf.TransportModeScooter: "🛴",
}

// ModeIcon returns the icon for a recognised transport mode, or an
// empty string for anything else.
func ModeIcon(mode tdf.TransportMode) string {
	return modeIcons[mode]
}

type RecommendationView struct {
	Icon     string
	Mode     string
	Duration string
	Cost     string
	CO2      string
	Source   string
}

type ResultsView struct {
	OriginText string

	Notes     []string
	ShowNotes bool

	Recommendations []RecommendationView
	EmptyMessage    string
}

// BuildResultsView maps a gateway response onto displayable text.
// Absent or malformed fields degrade to empty states rather than
// failing the render.
func BuildResultsView(response *tdf.RouteResponse) ResultsView {
	view := ResultsView{
		OriginText: "Origin location not available.",
	}

	if response == nil {
		view.EmptyMessage = noRecommendationsMessage
		return view
	}

	if response.Origin != nil && response.Origin.City != "" {
		view.OriginText = fmt.Sprintf("Detected Origin: %s", response.Origin.City)
	}

	view.Notes = response.Notes
	view.ShowNotes = len(response.Notes) > 0

	if len(response.Recommendations) == 0 {
		view.EmptyMessage = noRecommendationsMessage
		return view
	}

	for _, recommendation := range response.Recommendations {
		sourceCloud := recommendation.SourceCloud
		if sourceCloud == "" {
			sourceCloud = "Unknown Cloud"
		}

		view.Recommendations = append(view.Recommendations, RecommendationView{
			Icon:     ModeIcon(recommendation.Mode),
			Mode:     string(recommendation.Mode),
			Duration: fmt.Sprintf("%d minutes", recommendation.DurationMinutes),
			Cost:     fmt.Sprintf("$%.2f", recommendation.CostUSD),
			CO2:      fmt.Sprintf("%.2f kg", recommendation.EnvironmentalImpactCO2Kg),
			Source:   fmt.Sprintf("(Source: %s)", sourceCloud),
		})
	}

	return view
}
