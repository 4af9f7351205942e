package tdf

type Preference string

const (
	PreferenceFastest  Preference = "fastest"
	PreferenceCheapest Preference = "cheapest"
	PreferenceGreenest Preference = "greenest"
)

// ParsePreference maps a raw query value onto a known preference.
// An empty value falls back to fastest, matching the routing services.
func ParsePreference(value string) (Preference, bool) {
	switch Preference(value) {
	case PreferenceFastest, PreferenceCheapest, PreferenceGreenest:
		return Preference(value), true
	case "":
		return PreferenceFastest, true
	}

	return PreferenceFastest, false
}
