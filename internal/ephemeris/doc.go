// Package ephemeris supplies ecliptic longitudes and house cusps for the
// alignment calculators.
//
// The package defines the Provider contract consumed by every longitude-based
// calculator, a Julian Day time representation, and circular-arithmetic
// helpers shared across the engine. The built-in Approx provider evaluates
// mean-longitude series; a Swiss-Ephemeris-backed provider can be substituted
// behind the same interface without touching the calculators.
//
// All longitudes returned by this package are normalized to [0,360).
package ephemeris
