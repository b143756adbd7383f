// Package units provides length conversions to meters.
package units

// feetPerMeter converts meters to feet.
const feetPerMeter = 3.28084

// Length is a distance in meters.
type Length float64

// Kilometers returns v kilometers as a Length.
func Kilometers(v float64) Length { return Length(v * 1_000.0) }

// Meters returns v meters as a Length.
func Meters(v float64) Length { return Length(v) }

// Centimeters returns v centimeters as a Length.
func Centimeters(v float64) Length { return Length(v / 100.0) }

// Millimeters returns v millimeters as a Length.
func Millimeters(v float64) Length { return Length(v / 1_000.0) }

// Feet returns v feet as a Length.
func Feet(v float64) Length { return Length(v / feetPerMeter) }

// Meters returns the length in meters.
func (l Length) Meters() float64 { return float64(l) }
