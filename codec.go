package olc

import "github.com/shopspring/decimal"

// Version selects one of the two wire formats of the scheme.
type Version uint8

const (
	// VersionLegacy is the original fixed-width format: optional '+' prefix,
	// '.' separator after the fourth digit, no padding.
	VersionLegacy Version = iota + 1
	// VersionNext is the revised format: mandatory '+' separator at digit
	// position 8 and '0' padding for low-precision codes.
	VersionNext
)

// String returns the version name.
func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "legacy"
	case VersionNext:
		return "next"
	}
	return "unknown"
}

// Codec is the capability surface shared by both format versions. Codecs are
// stateless; the zero value of either implementation is ready to use.
//
// Version-specific shortening lives on the concrete types: LegacyCodec has
// ShortenBy4 and ShortenBy6, NextCodec has Shorten.
type Codec interface {
	// Encode converts a coordinate into a full code of codeLength
	// significant digits. A codeLength of 0 means DefaultCodeLength.
	Encode(lat, lng float64, codeLength int) (string, error)
	// Decode converts a full code into the area it denotes.
	Decode(code string) (Area, error)
	// IsValid reports whether the string is structurally a code.
	IsValid(code string) bool
	// IsShort reports whether the code is valid but needs a reference
	// location to resolve.
	IsShort(code string) bool
	// IsFull reports whether the code is valid and self-sufficient.
	IsFull(code string) bool
	// RecoverNearest completes a short code to the full code nearest the
	// reference location. A full code is returned canonicalized.
	RecoverNearest(code string, lat, lng float64) (string, error)
}

// ForVersion returns the codec for a format version. Unknown versions fall
// back to the current (next) format.
func ForVersion(v Version) Codec {
	if v == VersionLegacy {
		return LegacyCodec{}
	}
	return NextCodec{}
}

// recoverResolution returns the degree span of the cell in which a short
// code repeats, given how many leading digits are missing. Missing digits
// always come in whole pairs from the shorteners; odd counts from hand-made
// short codes truncate to the coarser pair.
func recoverResolution(missing int) decimal.Decimal {
	idx := missing/2 - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(pairResolutions) {
		idx = len(pairResolutions) - 1
	}
	return pairResolutions[idx]
}

// nudgeToward moves a recovered center by one resolution unit toward the
// reference when they differ by more than half a unit. Without this step a
// reference near a cell boundary recovers to the adjacent cell's
// representative instead of the nearest one. When bounded, the shift is
// suppressed if it would push the center past +-bound (the latitude poles);
// longitude needs no guard since re-encoding normalizes it.
func nudgeToward(center, ref, res, bound decimal.Decimal, bounded bool) decimal.Decimal {
	halfRes := res.Mul(half)
	switch {
	case ref.Add(halfRes).LessThan(center) &&
		(!bounded || center.Sub(res).GreaterThanOrEqual(bound.Neg())):
		return center.Sub(res)
	case ref.Sub(halfRes).GreaterThan(center) &&
		(!bounded || center.Add(res).LessThanOrEqual(bound)):
		return center.Add(res)
	}
	return center
}

// Package-level operations delegate to the current (next) format.

// Encode converts a coordinate into a full code in the next format.
func Encode(lat, lng float64, codeLength int) (string, error) {
	return NextCodec{}.Encode(lat, lng, codeLength)
}

// Decode converts a full next-format code into its area.
func Decode(code string) (Area, error) {
	return NextCodec{}.Decode(code)
}

// IsValid reports whether code is structurally a next-format code.
func IsValid(code string) bool { return NextCodec{}.IsValid(code) }

// IsShort reports whether code is a short next-format code.
func IsShort(code string) bool { return NextCodec{}.IsShort(code) }

// IsFull reports whether code is a full next-format code.
func IsFull(code string) bool { return NextCodec{}.IsFull(code) }

// Shorten trims a full next-format code against a nearby reference location.
func Shorten(code string, lat, lng float64) (string, error) {
	return NextCodec{}.Shorten(code, lat, lng)
}

// RecoverNearest completes a short next-format code using a reference
// location.
func RecoverNearest(code string, lat, lng float64) (string, error) {
	return NextCodec{}.RecoverNearest(code, lat, lng)
}
