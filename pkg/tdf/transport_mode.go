package tdf

type TransportMode string

const (
	TransportModeCar     TransportMode = "car"
	TransportModeBus                   = "bus"
	TransportModeTrain                 = "train"
	TransportModeBicycle               = "bicycle"
	TransportModeWalking               = "walking"
	TransportModeScooter               = "scooter"
)

// AllTransportModes lists every mode a routing instance may offer.
var AllTransportModes = []TransportMode{
	TransportModeCar,
	TransportModeBus,
	TransportModeTrain,
	TransportModeBicycle,
	TransportModeWalking,
	TransportModeScooter,
}
