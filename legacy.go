package olc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LegacyCodec implements the original code format: an optional '+' prefix, a
// '.' separator after the fourth digit when more digits follow, and no
// padding, e.g. "+9F2P.2CQHWW". Short codes are bare digit runs of four to
// seven characters.
type LegacyCodec struct{}

const (
	legacySeparator    = '.'
	legacySeparatorPos = 4
	legacyPrefix       = '+'

	legacyShortMin = 4
	legacyShortMax = 7

	// Fixed-trim shortening only applies to codes of full pair precision.
	legacyTrimMin = 10
	legacyTrimMax = 11
)

var (
	legacyRangeBy4 = dec("0.25")
	legacyRangeBy6 = dec("0.0125")
)

// legacyParse strips the prefix and separator and validates structure. It
// returns the upper-cased digits and whether a separator was present.
func legacyParse(code string) (digits string, hadSep, ok bool) {
	if code == "" {
		return "", false, false
	}
	s := code
	if s[0] == legacyPrefix {
		s = s[1:]
	}
	// The prefix may only lead the code.
	if strings.IndexByte(s, legacyPrefix) >= 0 {
		return "", false, false
	}
	if sep := strings.IndexByte(s, legacySeparator); sep >= 0 {
		hadSep = true
		if sep != legacySeparatorPos || sep == len(s)-1 {
			return "", false, false
		}
		if strings.IndexByte(s[sep+1:], legacySeparator) >= 0 {
			return "", false, false
		}
		s = s[:sep] + s[sep+1:]
	}
	if s == "" {
		return "", false, false
	}
	for i := 0; i < len(s); i++ {
		if digitValue(s[i]) < 0 {
			return "", false, false
		}
	}
	return strings.ToUpper(s), hadSep, true
}

// renderLegacy produces the canonical rendering of a digit string: prefixed,
// with the separator inserted when digits follow it.
func renderLegacy(digits string) string {
	if len(digits) <= legacySeparatorPos {
		return string(legacyPrefix) + digits
	}
	return string(legacyPrefix) + digits[:legacySeparatorPos] +
		string(legacySeparator) + digits[legacySeparatorPos:]
}

// Encode converts a coordinate into a full legacy-format code. codeLength
// counts significant digits; 0 means DefaultCodeLength. Odd lengths are
// allowed; the trailing longitude digit of the last pair is omitted.
func (LegacyCodec) Encode(lat, lng float64, codeLength int) (string, error) {
	return encodeLegacy(decimal.NewFromFloat(lat), decimal.NewFromFloat(lng), codeLength)
}

func encodeLegacy(lat, lng decimal.Decimal, n int) (string, error) {
	if n == 0 {
		n = DefaultCodeLength
	}
	if n < 2 {
		return "", fmt.Errorf("%w: %d", ErrCodeLength, n)
	}
	if n > maxDigits {
		n = maxDigits
	}
	lat = clipLatitude(lat)
	lng = normalizeLongitude(lng)
	if lat.Equal(latMax) {
		lat = lat.Sub(latitudePrecision(n))
	}
	return renderLegacy(encodeDigits(lat, lng, n)), nil
}

// IsValid reports whether code is structurally a legacy-format code.
func (LegacyCodec) IsValid(code string) bool {
	_, _, ok := legacyParse(code)
	return ok
}

// IsShort reports whether code is a valid legacy short code: four to seven
// digits with no separator.
func (LegacyCodec) IsShort(code string) bool {
	digits, hadSep, ok := legacyParse(code)
	return ok && !hadSep &&
		len(digits) >= legacyShortMin && len(digits) <= legacyShortMax
}

// IsFull reports whether code is a valid full code, including the first
// digit pair range check that rejects codes decoding outside the coordinate
// bounds.
func (c LegacyCodec) IsFull(code string) bool {
	digits, _, ok := legacyParse(code)
	if !ok || c.IsShort(code) || len(digits) < 2 {
		return false
	}
	if digitValue(digits[0])*encodingBase >= 180 {
		return false
	}
	return digitValue(digits[1])*encodingBase < 360
}

// Decode converts a full legacy-format code into the area it denotes.
func (c LegacyCodec) Decode(code string) (Area, error) {
	a, err := decodeLegacy(code)
	if err != nil {
		return Area{}, err
	}
	return a.toArea(), nil
}

func decodeLegacy(code string) (decArea, error) {
	if !(LegacyCodec{}).IsFull(code) {
		return decArea{}, fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	digits, _, _ := legacyParse(code)
	return decodeDigits(digits), nil
}

// ShortenBy4 removes the first four digits of a full ten- or eleven-digit
// code when the reference location is within 0.25 degrees of its center on
// both axes. A reference outside that range returns the code unchanged.
func (c LegacyCodec) ShortenBy4(code string, lat, lng float64) (string, error) {
	return c.shortenBy(4, code, lat, lng, legacyRangeBy4)
}

// ShortenBy6 removes the first six digits of a full ten- or eleven-digit
// code when the reference location is within 0.0125 degrees of its center on
// both axes. A reference outside that range returns the code unchanged.
func (c LegacyCodec) ShortenBy6(code string, lat, lng float64) (string, error) {
	return c.shortenBy(6, code, lat, lng, legacyRangeBy6)
}

func (c LegacyCodec) shortenBy(n int, code string, lat, lng float64, rng decimal.Decimal) (string, error) {
	if !c.IsFull(code) {
		return "", fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	digits, _, _ := legacyParse(code)
	if len(digits) < legacyTrimMin || len(digits) > legacyTrimMax {
		return "", fmt.Errorf("%w: %d digits, trimmable range is [%d,%d]",
			ErrCodeLength, len(digits), legacyTrimMin, legacyTrimMax)
	}
	cLat, cLng := decodeDigits(digits).center()
	refLat := clipLatitude(decimal.NewFromFloat(lat))
	refLng := normalizeLongitude(decimal.NewFromFloat(lng))
	if cLat.Sub(refLat).Abs().GreaterThan(rng) ||
		cLng.Sub(refLng).Abs().GreaterThan(rng) {
		// Too far to shorten safely; by contract a no-op, not an error.
		return code, nil
	}
	return string(legacyPrefix) + digits[n:], nil
}

// RecoverNearest completes a short code to the full code whose center is
// nearest the reference location. A full code is returned in canonical
// rendering.
func (c LegacyCodec) RecoverNearest(code string, lat, lng float64) (string, error) {
	if c.IsFull(code) {
		digits, _, _ := legacyParse(code)
		return renderLegacy(digits), nil
	}
	if !c.IsShort(code) {
		return "", fmt.Errorf("%w: %q", ErrNotShortCode, code)
	}
	digits, _, _ := legacyParse(code)
	missing := pairDigits - len(digits)
	if missing%2 != 0 {
		// Odd-length shorts only come from 11-digit originals; rounding up
		// keeps the latitude/longitude digit pairing of the prefix aligned.
		missing++
	}

	refLat := clipLatitude(decimal.NewFromFloat(lat))
	refLng := normalizeLongitude(decimal.NewFromFloat(lng))
	res := recoverResolution(missing)

	prefix := encodeDigits(refLat, refLng, pairDigits)[:missing]
	area := decodeDigits(prefix + digits)
	cLat, cLng := area.center()
	cLat = nudgeToward(cLat, refLat, res, latMax, true)
	cLng = nudgeToward(cLng, refLng, res, lngMax, false)
	return encodeLegacy(cLat, cLng, area.codeLength)
}
