package restaurant

import "math"

const earthRadiusMiles = 3959

// distanceMiles is the great-circle distance between two points (haversine),
// rounded to one decimal for display.
func distanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
