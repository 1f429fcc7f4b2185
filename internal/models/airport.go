package models

type Region string

const (
	RegionAmerica Region = "America"
	RegionEurope  Region = "Europe"
)

// Airport is static reference data; the set below is immutable.
type Airport struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Region Region  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

var Airports = []Airport{
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Region: RegionAmerica, Lat: 40.6413, Lng: -73.7781},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Region: RegionAmerica, Lat: 33.9416, Lng: -118.4085},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Region: RegionAmerica, Lat: 37.6213, Lng: -122.3790},
	{Code: "LGA", Name: "LaGuardia Airport", City: "New York", Region: RegionAmerica, Lat: 40.7769, Lng: -73.8740},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Region: RegionAmerica, Lat: 41.9742, Lng: -87.9073},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta", City: "Atlanta", Region: RegionAmerica, Lat: 33.6407, Lng: -84.4277},
	{Code: "MCO", Name: "Orlando International", City: "Orlando", Region: RegionAmerica, Lat: 28.4312, Lng: -81.3081},
	{Code: "LAS", Name: "Harry Reid International", City: "Las Vegas", Region: RegionAmerica, Lat: 36.0840, Lng: -115.1537},
	{Code: "DEN", Name: "Denver International", City: "Denver", Region: RegionAmerica, Lat: 39.8561, Lng: -104.6737},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Region: RegionAmerica, Lat: 47.4502, Lng: -122.3088},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Region: RegionAmerica, Lat: 32.8998, Lng: -97.0403},
	{Code: "BOS", Name: "Logan International", City: "Boston", Region: RegionAmerica, Lat: 42.3656, Lng: -71.0096},
	{Code: "PHX", Name: "Phoenix Sky Harbor", City: "Phoenix", Region: RegionAmerica, Lat: 33.4342, Lng: -112.0080},
	{Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Region: RegionAmerica, Lat: 29.9902, Lng: -95.3368},
	{Code: "MSP", Name: "Minneapolis-Saint Paul", City: "Minneapolis", Region: RegionAmerica, Lat: 44.8848, Lng: -93.2223},
	{Code: "DTW", Name: "Detroit Metropolitan", City: "Detroit", Region: RegionAmerica, Lat: 42.2125, Lng: -83.3533},
	{Code: "TUS", Name: "Tucson International", City: "Tucson", Region: RegionAmerica, Lat: 32.1161, Lng: -110.9410},
	{Code: "EWR", Name: "Newark Liberty International", City: "Newark", Region: RegionAmerica, Lat: 40.6895, Lng: -74.1745},
	{Code: "SAN", Name: "San Diego International", City: "San Diego", Region: RegionAmerica, Lat: 32.7338, Lng: -117.1933},
	{Code: "PHL", Name: "Philadelphia International", City: "Philadelphia", Region: RegionAmerica, Lat: 39.8729, Lng: -75.2437},
	{Code: "DCA", Name: "Ronald Reagan Washington National", City: "Washington", Region: RegionAmerica, Lat: 38.8512, Lng: -77.0402},
	{Code: "HOU", Name: "William P. Hobby", City: "Houston", Region: RegionAmerica, Lat: 29.6454, Lng: -95.2789},
	{Code: "DAL", Name: "Dallas Love Field", City: "Dallas", Region: RegionAmerica, Lat: 32.8471, Lng: -96.8518},
	{Code: "HNL", Name: "Daniel K. Inouye International", City: "Honolulu", Region: RegionAmerica, Lat: 21.3156, Lng: -157.9242},
	{Code: "OGG", Name: "Kahului Airport", City: "Maui", Region: RegionAmerica, Lat: 20.8986, Lng: -156.4305},
	{Code: "MIA", Name: "Miami International", City: "Miami", Region: RegionAmerica, Lat: 25.7959, Lng: -80.2870},
	{Code: "FLL", Name: "Fort Lauderdale-Hollywood", City: "Fort Lauderdale", Region: RegionAmerica, Lat: 26.0742, Lng: -80.1506},
	{Code: "CLT", Name: "Charlotte Douglas International", City: "Charlotte", Region: RegionAmerica, Lat: 35.2144, Lng: -80.9473},
	{Code: "BNA", Name: "Nashville International", City: "Nashville", Region: RegionAmerica, Lat: 36.1263, Lng: -86.6774},
	{Code: "AUS", Name: "Austin-Bergstrom International", City: "Austin", Region: RegionAmerica, Lat: 30.1944, Lng: -97.6700},
	{Code: "LHR", Name: "London Heathrow", City: "London", Region: RegionEurope, Lat: 51.4700, Lng: -0.4543},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Region: RegionEurope, Lat: 49.0097, Lng: 2.5479},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Region: RegionEurope, Lat: 50.0379, Lng: 8.5622},
	{Code: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", Region: RegionEurope, Lat: 52.3105, Lng: 4.7683},
	{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas", City: "Madrid", Region: RegionEurope, Lat: 40.4839, Lng: -3.5680},
}

func FindAirport(code string) (Airport, bool) {
	for _, a := range Airports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}
