package olc

import (
	"github.com/golang/geo/s2"
	"github.com/shopspring/decimal"
)

// Area is the rectangle of the Earth's surface denoted by a full code.
// Bounds are in decimal degrees, rounded to 11 decimal digits with ties away
// from zero. CodeLength counts significant digits, excluding the separator
// and any padding. Area values are immutable.
type Area struct {
	LatLow, LngLow   float64
	LatHigh, LngHigh float64
	CodeLength       int
}

// Center returns the midpoint of the area. Each component is clamped so it
// never exceeds the maximum bound (90 or 180); it always lies within the
// area's own bounds.
func (a Area) Center() (lat, lng float64) {
	lat = (a.LatLow + a.LatHigh) / 2
	if lat > 90 {
		lat = 90
	}
	lng = (a.LngLow + a.LngHigh) / 2
	if lng > 180 {
		lng = 180
	}
	return lat, lng
}

// Contains reports whether the point lies inside the area. Bounds are
// inclusive, so a coordinate clipped to latitude 90 is contained by the
// topmost cell.
func (a Area) Contains(lat, lng float64) bool {
	return lat >= a.LatLow && lat <= a.LatHigh &&
		lng >= a.LngLow && lng <= a.LngHigh
}

// Width returns the longitude span of the area in degrees.
func (a Area) Width() float64 { return a.LngHigh - a.LngLow }

// Height returns the latitude span of the area in degrees.
func (a Area) Height() float64 { return a.LatHigh - a.LatLow }

// LatLng returns the area's center as an S2 point.
func (a Area) LatLng() s2.LatLng {
	lat, lng := a.Center()
	return s2.LatLngFromDegrees(lat, lng)
}

// CellID returns the S2 cell at the given level that contains the area's
// center. Useful for bridging codes into S2-based spatial indexes.
func (a Area) CellID(level int) s2.CellID {
	return s2.CellIDFromLatLng(a.LatLng()).Parent(level)
}

// Rect returns the area as an S2 latitude/longitude rectangle.
func (a Area) Rect() s2.Rect {
	r := s2.RectFromLatLng(s2.LatLngFromDegrees(a.LatLow, a.LngLow))
	return r.AddPoint(s2.LatLngFromDegrees(a.LatHigh, a.LngHigh))
}

// decArea is the exact-decimal working form of an Area. The codecs operate
// on decArea throughout and only round when handing an Area to the caller,
// so multi-step operations like nearest recovery never accumulate binary
// floating point error.
type decArea struct {
	latLo, lngLo decimal.Decimal
	latHi, lngHi decimal.Decimal
	codeLength   int
}

// center returns the exact midpoint with the same clamping as Area.Center.
func (a decArea) center() (lat, lng decimal.Decimal) {
	lat = a.latLo.Add(a.latHi).Mul(half)
	if lat.GreaterThan(latMax) {
		lat = latMax
	}
	lng = a.lngLo.Add(a.lngHi).Mul(half)
	if lng.GreaterThan(lngMax) {
		lng = lngMax
	}
	return lat, lng
}

// toArea rounds the bounds to the reported precision.
func (a decArea) toArea() Area {
	round := func(d decimal.Decimal) float64 {
		return d.Round(areaPrecision).InexactFloat64()
	}
	return Area{
		LatLow:     round(a.latLo),
		LngLow:     round(a.lngLo),
		LatHigh:    round(a.latHi),
		LngHigh:    round(a.lngHi),
		CodeLength: a.codeLength,
	}
}
