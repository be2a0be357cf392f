package humandesign

import (
	"github.com/starfield-labs/almanac/internal/ephemeris"
)

// Width of one gate and one line on the wheel, in degrees.
const (
	gateWidth = 360.0 / 64
	lineWidth = gateWidth / 6
)

// gateWheel maps wheel segment index to gate number, starting at 0 degrees
// Aries and proceeding in longitude order. The numbering is the traditional
// sequence, not zodiac order.
var gateWheel = [64]int{
	17, 21, 51, 42, 3, 27, 24, 2,
	23, 8, 20, 16, 35, 45, 12, 15,
	52, 39, 53, 62, 56, 31, 33, 7,
	4, 29, 59, 40, 64, 47, 6, 46,
	18, 48, 57, 32, 50, 28, 44, 1,
	43, 14, 34, 9, 5, 26, 11, 10,
	58, 38, 54, 61, 60, 41, 19, 13,
	49, 30, 55, 37, 63, 22, 36, 25,
}

// GateActivation is one body's placement on the wheel.
type GateActivation struct {
	Gate int
	Line int
	Body ephemeris.Body
}

// GateForLongitude returns the gate number for an ecliptic longitude.
func GateForLongitude(longitude float64) int {
	segment := int(ephemeris.Normalize(longitude)/gateWidth) % 64
	return gateWheel[segment]
}

// LineForLongitude returns the line, in [1,6], for an ecliptic longitude.
func LineForLongitude(longitude float64) int {
	within := ephemeris.Normalize(longitude)
	offset := within - float64(int(within/gateWidth))*gateWidth
	line := int(offset/lineWidth) + 1
	if line > 6 {
		line = 6
	}
	return line
}

// ActivationForLongitude combines gate and line for a body's longitude.
func ActivationForLongitude(longitude float64, body ephemeris.Body) GateActivation {
	return GateActivation{
		Gate: GateForLongitude(longitude),
		Line: LineForLongitude(longitude),
		Body: body,
	}
}
