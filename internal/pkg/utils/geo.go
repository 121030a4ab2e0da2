package utils

import "math"

const earthRadiusKm = 6371.0

// GreatCircleDistance returns the distance in kilometers between two points
// using the spherical law of cosines:
//
//	d = R * acos(cos(lat1)*cos(lat2)*cos(lng2-lng1) + sin(lat1)*sin(lat2))
//
// The acos argument is clamped to [-1, 1] so coincident points do not fall
// outside the domain through floating-point overshoot. The SQL radius query
// in the attraction repository evaluates the same expression; keep the two
// in sync.
func GreatCircleDistance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLngRad := (lng2 - lng1) * math.Pi / 180.0

	arg := math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLngRad) +
		math.Sin(lat1Rad)*math.Sin(lat2Rad)

	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}

	return earthRadiusKm * math.Acos(arg)
}

// ValidateCoordinates reports whether lat/lng fall within WGS84 bounds.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius reports whether the radius is within the accepted range
// (0.1 - 100 km).
func ValidateRadius(radiusKm float64) bool {
	return radiusKm >= 0.1 && radiusKm <= 100
}
