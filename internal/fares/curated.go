package fares

// Curated schedule for the DTW -> TUS demo route. Always served instead of
// synthetic generation, sorted by price after passenger scaling, and every
// offer carries the verified flag.
type curatedOffer struct {
	ID       string
	Airline  string
	Price    int
	Dep      string
	Arr      string
	Duration string
	Stops    int
	Aircraft string
}

const (
	curatedOrigin      = "DTW"
	curatedDestination = "TUS"
)

var curatedOffers = []curatedOffer{
	{ID: "DL1234", Airline: "Delta Air Lines", Price: 250, Dep: "08:00 AM", Arr: "10:30 AM", Duration: "2h 30m", Stops: 0, Aircraft: "Boeing 737-800"},
	{ID: "AA5678", Airline: "American Airlines", Price: 265, Dep: "09:15 AM", Arr: "11:45 AM", Duration: "2h 30m", Stops: 0, Aircraft: "Airbus A321"},
	{ID: "F99012", Airline: "Frontier Airlines", Price: 180, Dep: "07:30 AM", Arr: "10:00 AM", Duration: "2h 30m", Stops: 0, Aircraft: "Airbus A320"},
	{ID: "UA3456", Airline: "United Airlines", Price: 270, Dep: "10:00 AM", Arr: "12:30 PM", Duration: "2h 30m", Stops: 1, Aircraft: "Boeing 737 Max 8"},
}
