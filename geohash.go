package olc

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
)

// ToGeohash returns a geohash for the center of a full code. The geohash
// length is picked so its cell is no larger than the code's cell, up to the
// 12-character geohash maximum.
func ToGeohash(code string, version Version) (string, error) {
	area, err := ForVersion(version).Decode(code)
	if err != nil {
		return "", err
	}
	lat, lng := area.Center()
	return geohash.EncodeWithPrecision(lat, lng, geohashPrecision(area.CodeLength)), nil
}

// FromGeohash returns the code of the given length and format version for
// the center of a geohash cell.
func FromGeohash(hash string, codeLength int, version Version) (string, error) {
	center := geohash.Decode(hash).Center()
	return ForVersion(version).Encode(center.Lat(), center.Lng(), codeLength)
}

// geohashPrecision maps a code length to the shortest geohash whose cell
// fits inside the code cell on both axes. Lengths past 12 exceed what a
// 12-character geohash resolves; the maximum is the best available.
func geohashPrecision(codeLength int) int {
	switch {
	case codeLength <= 2:
		return 2
	case codeLength <= 4:
		return 4
	case codeLength <= 6:
		return 6
	case codeLength <= 8:
		return 7
	case codeLength <= 10:
		return 9
	case codeLength <= 12:
		return 11
	default:
		return 12
	}
}
