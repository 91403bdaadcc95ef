// Package units provides the pressure and distance conversions between the
// metric values Weatherbit reports and the imperial display units, plus the
// decimal rounding the display layer applies.
package units

import "math"

const (
	// hPaPerInHg is the conventional inch-of-mercury definition used by
	// weather displays (1 inHg = 33.86389 hPa).
	hPaPerInHg = 33.86389

	// milesPerKm is the international mile ratio (1 km = 1/1.609344 mi).
	milesPerKm = 0.62137119223733
)

// HPaToInHg converts a pressure from hectopascals to inches of mercury.
func HPaToInHg(hpa float64) float64 {
	return hpa / hPaPerInHg
}

// InHgToHPa converts a pressure from inches of mercury to hectopascals.
func InHgToHPa(inhg float64) float64 {
	return inhg * hPaPerInHg
}

// KmToMiles converts a distance from kilometers to miles.
func KmToMiles(km float64) float64 {
	return km * milesPerKm
}

// MilesToKm converts a distance from miles to kilometers.
func MilesToKm(mi float64) float64 {
	return mi / milesPerKm
}

// RoundTo rounds v half-away-from-zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
