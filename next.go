package olc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NextCodec implements the revised code format: a mandatory '+' separator at
// digit position 8 and '0' padding that keeps low-precision codes at a fixed
// rendered width, e.g. "9F2P2CQH+WW" or "9F2P0000+".
type NextCodec struct{}

const (
	nextSeparator       = '+'
	nextSeparatorPos    = 8
	nextPadding         = '0'
	nextMaxPaddingRun   = 6
	nextMinShortenDigit = 6
)

// Encode converts a coordinate into a full next-format code. codeLength
// counts significant digits; 0 means DefaultCodeLength. Lengths below the
// pair stage must be even, so the shortest legal lengths are 2, 4, 6 and 8.
func (NextCodec) Encode(lat, lng float64, codeLength int) (string, error) {
	return encodeNext(decimal.NewFromFloat(lat), decimal.NewFromFloat(lng), codeLength)
}

func encodeNext(lat, lng decimal.Decimal, n int) (string, error) {
	if n == 0 {
		n = DefaultCodeLength
	}
	if n < 2 || (n < pairDigits && n%2 == 1) {
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
	digits := encodeDigits(lat, lng, n)
	if n < nextSeparatorPos {
		return digits + strings.Repeat(string(nextPadding), nextSeparatorPos-n) + string(nextSeparator), nil
	}
	return digits[:nextSeparatorPos] + string(nextSeparator) + digits[nextSeparatorPos:], nil
}

// IsValid reports whether code is structurally a next-format code: exactly
// one separator at an even position no later than 8, at most one padding run
// (even length, at most 6, ending at the separator, never leading), and
// alphabet characters everywhere else. A lone character after the separator
// is invalid.
func (NextCodec) IsValid(code string) bool {
	sep := strings.IndexByte(code, nextSeparator)
	if sep < 0 || strings.IndexByte(code[sep+1:], nextSeparator) >= 0 {
		return false
	}
	if sep > nextSeparatorPos || sep%2 != 0 {
		return false
	}
	if len(code)-sep-1 == 1 {
		return false
	}
	pad := strings.IndexByte(code, nextPadding)
	if pad >= 0 {
		// Padding implies a full-width code ending at the separator.
		if pad == 0 || sep < nextSeparatorPos || sep != len(code)-1 {
			return false
		}
		run := sep - pad
		if run%2 != 0 || run > nextMaxPaddingRun {
			return false
		}
		for i := pad; i < sep; i++ {
			if code[i] != nextPadding {
				return false
			}
		}
	}
	for i := 0; i < len(code); i++ {
		if i == sep || (pad >= 0 && i >= pad && i < sep) {
			continue
		}
		if digitValue(code[i]) < 0 {
			return false
		}
	}
	return true
}

// IsShort reports whether code is a valid short code: the separator appears
// before position 8, so leading digits are missing.
func (c NextCodec) IsShort(code string) bool {
	return c.IsValid(code) && strings.IndexByte(code, nextSeparator) < nextSeparatorPos
}

// IsFull reports whether code is a valid full code. Beyond structure this
// checks that the first digit pair stays within the coordinate bounds, so a
// full code always decodes to a real location.
func (c NextCodec) IsFull(code string) bool {
	if !c.IsValid(code) || c.IsShort(code) {
		return false
	}
	if digitValue(code[0])*encodingBase >= 180 {
		return false
	}
	return digitValue(code[1])*encodingBase < 360
}

// Decode converts a full next-format code into the area it denotes.
func (c NextCodec) Decode(code string) (Area, error) {
	a, err := decodeNext(code)
	if err != nil {
		return Area{}, err
	}
	return a.toArea(), nil
}

func decodeNext(code string) (decArea, error) {
	if !(NextCodec{}).IsFull(code) {
		return decArea{}, fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	return decodeDigits(nextDigits(code)), nil
}

// nextDigits strips the separator and padding and upper-cases what remains.
func nextDigits(code string) string {
	s := strings.ToUpper(code)
	s = strings.ReplaceAll(s, string(nextSeparator), "")
	if i := strings.IndexByte(s, nextPadding); i >= 0 {
		s = s[:i]
	}
	return s
}

// Shorten removes leading digits from a full, unpadded code of at least six
// digits. Candidate trims are scanned from the coarsest resolution tier to
// the finest; the first tier whose acceptance radius (0.3 of the tier
// resolution) contains the reference location decides the trim. If the
// reference is too far from the code's center for any tier, the code is
// returned unchanged; that is a no-op, not an error.
func (c NextCodec) Shorten(code string, lat, lng float64) (string, error) {
	if !c.IsFull(code) {
		return "", fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	if strings.IndexByte(code, nextPadding) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrPaddedCode, code)
	}
	digits := nextDigits(code)
	if len(digits) < nextMinShortenDigit {
		return "", fmt.Errorf("%w: shorten needs at least %d digits", ErrCodeLength, nextMinShortenDigit)
	}
	cLat, cLng := decodeDigits(digits).center()
	refLat := clipLatitude(decimal.NewFromFloat(lat))
	refLng := normalizeLongitude(decimal.NewFromFloat(lng))
	rng := cLat.Sub(refLat).Abs()
	if d := cLng.Sub(refLng).Abs(); d.GreaterThan(rng) {
		rng = d
	}
	for tier := 1; tier <= len(pairResolutions)-2; tier++ {
		if pairResolutions[tier].Mul(shortenFactor).GreaterThan(rng) {
			return strings.ToUpper(code)[(tier+1)*2:], nil
		}
	}
	return code, nil
}

// RecoverNearest completes a short code to the full code whose center is
// nearest the reference location. A full code is returned upper-cased but
// otherwise untouched.
func (c NextCodec) RecoverNearest(code string, lat, lng float64) (string, error) {
	if c.IsFull(code) {
		return strings.ToUpper(code), nil
	}
	if !c.IsShort(code) {
		return "", fmt.Errorf("%w: %q", ErrNotShortCode, code)
	}
	short := strings.ToUpper(code)
	sep := strings.IndexByte(short, nextSeparator)
	missing := nextSeparatorPos - sep

	refLat := clipLatitude(decimal.NewFromFloat(lat))
	refLng := normalizeLongitude(decimal.NewFromFloat(lng))
	res := recoverResolution(missing)

	// The first digits of the reference's own encoding name the repeat cell
	// the reference sits in.
	prefix := encodeDigits(refLat, refLng, pairDigits)[:missing]
	area := decodeDigits(prefix + strings.ReplaceAll(short, string(nextSeparator), ""))
	cLat, cLng := area.center()
	cLat = nudgeToward(cLat, refLat, res, latMax, true)
	cLng = nudgeToward(cLng, refLng, res, lngMax, false)
	return encodeNext(cLat, cLng, area.codeLength)
}
