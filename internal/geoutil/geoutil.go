// Package geoutil sanity-checks resolved position fixes using s2's
// LatLng validity rules, the way samoyed's ll2utm tool builds an
// s2.LatLng before handing it to a coordinate converter.
package geoutil

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Valid reports whether lat/lon form a finite geographic point with
// latitude within [-90, 90] and longitude within [-180, 180], both ends
// inclusive, so points exactly on a pole or the antimeridian are accepted.
// NaN in either coordinate is rejected. This is the last sanity check
// before a fix is handed to an output writer.
func Valid(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}

	ll := s2.LatLng{
		Lat: s1.Angle(lat * math.Pi / 180),
		Lng: s1.Angle(lon * math.Pi / 180),
	}

	return ll.IsValid()
}
