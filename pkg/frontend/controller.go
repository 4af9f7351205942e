package frontend

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tripwise/tripwise/pkg/tdf"
)

type State string

const (
	StateIdle       State = "Idle"
	StateValidating       = "Validating"
	StateLoading          = "Loading"
	StateSuccess          = "Success"
	StateFailed           = "Failed"
)

// View is the display surface the controller drives. Implemented by
// the HTML page view and by fakes in tests.
type View interface {
	ClearResults()
	RevealResults()
	SetLoading(visible bool)
	SetSubmitEnabled(enabled bool)
	RenderResults(response *tdf.RouteResponse)
	RenderError(message string)
}

// FormController runs one submit cycle of the search form:
// Idle -> Validating -> Loading -> {Success, Failed} -> Idle.
type FormController struct {
	View        View
	Client      RecommendationFetcher
	Preferences Store

	state State
}

func (f *FormController) State() State {
	if f.state == "" {
		return StateIdle
	}

	return f.state
}

func (f *FormController) transition(state State) {
	log.Debug().Str("from", string(f.State())).Str("to", string(state)).Msg("Form state transition")

	f.state = state
}

func (f *FormController) Submit(ctx context.Context, destination string, preference string) {
	f.transition(StateValidating)

	// The preference control changed before submit reached us, so the
	// stored value follows it regardless of validation outcome
	if preference != "" && f.Preferences != nil {
		f.Preferences.Save(preference)
	}

	destination = strings.TrimSpace(destination)
	if destination == "" {
		f.transition(StateFailed)
		f.View.RenderError("Please enter a destination city.")
		f.transition(StateIdle)
		return
	}

	f.transition(StateLoading)

	f.View.ClearResults()
	f.View.RevealResults()
	f.View.SetLoading(true)
	f.View.SetSubmitEnabled(false)

	// Every path out of Loading restores the form
	defer func() {
		f.View.SetLoading(false)
		f.View.SetSubmitEnabled(true)
		f.transition(StateIdle)
	}()

	response, err := f.Client.FetchRecommendations(ctx, destination, preference)
	if err != nil {
		f.transition(StateFailed)

		message := err.Error()

		var requestError *RequestError
		if errors.As(err, &requestError) {
			message = requestError.Message
		}

		if message == "" {
			message = "An unknown error occurred."
		}

		f.View.RenderError(message)
		return
	}

	f.transition(StateSuccess)
	f.View.RenderResults(response)
}
