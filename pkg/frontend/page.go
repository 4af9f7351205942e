package frontend

import (
	"fmt"

	"github.com/tripwise/tripwise/pkg/tdf"
)

// PageData is everything the page template needs for one render.
type PageData struct {
	Destination string
	Preference  string

	ResultsVisible bool
	Loading        bool
	SubmitDisabled bool

	ErrorMessage string
	Results      *ResultsView
}

// PageView implements View by accumulating page state for a single
// server-side render.
type PageView struct {
	Data PageData
}

func (v *PageView) ClearResults() {
	v.Data.Results = nil
	v.Data.ErrorMessage = ""
}

func (v *PageView) RevealResults() {
	v.Data.ResultsVisible = true
}

func (v *PageView) SetLoading(visible bool) {
	v.Data.Loading = visible
}

func (v *PageView) SetSubmitEnabled(enabled bool) {
	v.Data.SubmitDisabled = !enabled
}

func (v *PageView) RenderResults(response *tdf.RouteResponse) {
	results := BuildResultsView(response)
	v.Data.Results = &results
}

func (v *PageView) RenderError(message string) {
	v.Data.ResultsVisible = true
	v.Data.ErrorMessage = fmt.Sprintf("Error: %s", message)
}
