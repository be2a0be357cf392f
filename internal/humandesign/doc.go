// Package humandesign maps ecliptic longitudes onto the Human Design wheel
// and derives natal charts, daily transits, and solar returns.
//
// The wheel divides the ecliptic into 64 gates of 5.625 degrees each, six
// lines per gate. Gate numbers follow a fixed sequence around the wheel
// rather than zodiac order, so all lookups go through the sequence table.
package humandesign
