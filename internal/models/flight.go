package models

// Flight is one priced offer. Offers are immutable once generated; every
// search produces a fresh list.
type Flight struct {
	ID               string     `json:"id"`
	Airline          string     `json:"airline"`
	Logo             string     `json:"logo"`
	DepartureAirport string     `json:"departureAirport"`
	ArrivalAirport   string     `json:"arrivalAirport"`
	DepartureTime    string     `json:"departureTime"`
	ArrivalTime      string     `json:"arrivalTime"`
	Duration         string     `json:"duration"`
	Price            int        `json:"price"`
	Class            CabinClass `json:"class"`
	Stops            int        `json:"stops"`
	AircraftType     string     `json:"aircraftType"`
	BaggageAllowance string     `json:"baggageAllowance"`
	VerifiedSchedule bool       `json:"verifiedSchedule,omitempty"`
}

type Hotel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Stars         int    `json:"stars"`
	PricePerNight int    `json:"pricePerNight"`
	Image         string `json:"image"`
	Description   string `json:"description"`
}
