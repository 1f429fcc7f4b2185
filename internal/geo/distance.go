// Package geo computes great-circle distances between airport coordinates.
package geo

import "github.com/umahmood/haversine"

// Miles returns the great-circle distance in statute miles between two
// (lat, lng) pairs given in degrees. Pure function: malformed coordinates
// simply produce a numeric (possibly NaN) result, never an error.
func Miles(lat1, lng1, lat2, lng2 float64) float64 {
	mi, _ := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lng1},
		haversine.Coord{Lat: lat2, Lon: lng2},
	)
	return mi
}
