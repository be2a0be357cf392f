package ephemeris

// Body identifies a celestial body tracked by the engine.
type Body int

const (
	BodyUnspecified Body = iota
	BodySun
	BodyMoon
	BodyMercury
	BodyVenus
	BodyMars
	BodyJupiter
	BodySaturn
	BodyUranus
	BodyNeptune
	BodyPluto
	BodyNorthNode
	BodySouthNode
	BodyEarth
)

func (b Body) String() string {
	switch b {
	case BodySun:
		return "Sun"
	case BodyMoon:
		return "Moon"
	case BodyMercury:
		return "Mercury"
	case BodyVenus:
		return "Venus"
	case BodyMars:
		return "Mars"
	case BodyJupiter:
		return "Jupiter"
	case BodySaturn:
		return "Saturn"
	case BodyUranus:
		return "Uranus"
	case BodyNeptune:
		return "Neptune"
	case BodyPluto:
		return "Pluto"
	case BodyNorthNode:
		return "North Node"
	case BodySouthNode:
		return "South Node"
	case BodyEarth:
		return "Earth"
	default:
		return "Unknown"
	}
}

// ChartBodies is the full body set used for natal and transit snapshots.
var ChartBodies = []Body{
	BodySun, BodyEarth, BodyMoon, BodyNorthNode, BodySouthNode,
	BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn,
	BodyUranus, BodyNeptune, BodyPluto,
}

// AspectBodies is the body set scanned for lunar aspects when detecting
// void-of-course windows. The Moon itself and derived points are excluded.
var AspectBodies = []Body{
	BodySun, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}
