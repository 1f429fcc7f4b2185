package models

type CabinClass string

const (
	CabinEconomy  CabinClass = "Economy"
	CabinPremium  CabinClass = "Premium"
	CabinBusiness CabinClass = "Business"
	CabinFirst    CabinClass = "First"
)

// Rank is the ordinal used to index fare bands: Economy=0 ... First=3.
// Unknown classes are priced as Economy.
func (c CabinClass) Rank() int {
	switch c {
	case CabinPremium:
		return 1
	case CabinBusiness:
		return 2
	case CabinFirst:
		return 3
	default:
		return 0
	}
}

type TripType string

const (
	TripOneWay    TripType = "ONE_WAY"
	TripRoundTrip TripType = "ROUND_TRIP"
	TripMultiCity TripType = "MULTI_CITY"
)

type MultiCityLeg struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// SearchParams describes one fare search. For ONE_WAY and ROUND_TRIP the
// origin/destination/date fields apply; for MULTI_CITY the Legs list does.
type SearchParams struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	CabinClass  CabinClass     `json:"cabinClass"`
	Passengers  int            `json:"passengers"`
	Date        string         `json:"date"`
	ReturnDate  string         `json:"returnDate,omitempty"`
	TripType    TripType       `json:"tripType"`
	Legs        []MultiCityLeg `json:"multiCityLegs,omitempty"`
}

type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type FlightSearchResponse struct {
	Flights []Flight          `json:"flights"`
	Sources []GroundingSource `json:"sources"`
}
