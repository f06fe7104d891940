package olc

import "github.com/shopspring/decimal"

// alphabet is the 20-symbol digit set shared by both code formats. It omits
// vowels and easily confused characters (0/O, 1/I/L) so codes never spell
// words and survive transcription.
const alphabet = "23456789CFGHJMPQRVWX"

const (
	// encodingBase is the number of symbols in the alphabet.
	encodingBase = 20

	// pairDigits is the maximum number of digits in the pair stage.
	pairDigits = 10

	// maxDigits is the maximum number of significant digits in a code.
	// Digits beyond the pair stage come from the 4x5 refinement grid.
	maxDigits = 15

	// gridCols and gridRows are the refinement grid dimensions. Longitude
	// divides by columns, latitude by rows.
	gridCols = 4
	gridRows = 5

	// DefaultCodeLength is the code length used when none is requested.
	// Ten digits give a cell of roughly 14x14 meters.
	DefaultCodeLength = 10
)

// areaPrecision is the number of decimal digits reported for decoded
// bounds. Rounding is half away from zero, matching the reference
// implementations digit for digit.
const areaPrecision = 11

// digitValues maps an ASCII byte to its alphabet value, or -1.
// Lookup is case-insensitive.
var digitValues [128]int8

func init() {
	for i := range digitValues {
		digitValues[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		digitValues[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			digitValues[c+'a'-'A'] = int8(i)
		}
	}
}

// digitValue returns the alphabet value of c, or -1 when c is not a digit.
func digitValue(c byte) int {
	if int(c) >= len(digitValues) {
		return -1
	}
	return int(digitValues[c])
}

// dec parses a decimal constant. Only used with literal strings.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var (
	latMax = dec("90")
	lngMax = dec("180")

	fullCircle = dec("360")
	half       = dec("0.5")

	// shortenFactor scales a pair resolution into the acceptance radius
	// used by the variable shortener.
	shortenFactor = dec("0.3")
)

// pairResolutions is the cell size, in degrees, that remains after consuming
// the digit pair at each position. Position i has place value
// 20^(1-i) degrees on both axes.
var pairResolutions = [...]decimal.Decimal{
	dec("20"), dec("1"), dec("0.05"), dec("0.0025"), dec("0.000125"),
}

// pairReciprocals holds 1/pairResolutions[i]. Digit extraction multiplies by
// the reciprocal instead of dividing so every intermediate stays an exact
// decimal.
var pairReciprocals = [...]decimal.Decimal{
	dec("0.05"), dec("1"), dec("20"), dec("400"), dec("8000"),
}

// Grid stage cell sizes for digits 11..15. Latitude divides by 5 per digit,
// longitude by 4, starting from the final pair cell of 0.000125 degrees.
var (
	gridLatSizes = [...]decimal.Decimal{
		dec("0.000025"), dec("0.000005"), dec("0.000001"),
		dec("0.0000002"), dec("0.00000004"),
	}
	gridLatReciprocals = [...]decimal.Decimal{
		dec("40000"), dec("200000"), dec("1000000"),
		dec("5000000"), dec("25000000"),
	}
	gridLngSizes = [...]decimal.Decimal{
		dec("0.00003125"), dec("0.0000078125"), dec("0.000001953125"),
		dec("0.00000048828125"), dec("0.0000001220703125"),
	}
	gridLngReciprocals = [...]decimal.Decimal{
		dec("32000"), dec("128000"), dec("512000"),
		dec("2048000"), dec("8192000"),
	}
)

// clipLatitude forces lat into [-90, 90].
func clipLatitude(lat decimal.Decimal) decimal.Decimal {
	if lat.LessThan(latMax.Neg()) {
		return latMax.Neg()
	}
	if lat.GreaterThan(latMax) {
		return latMax
	}
	return lat
}

// normalizeLongitude forces lng into [-180, 180).
func normalizeLongitude(lng decimal.Decimal) decimal.Decimal {
	for lng.LessThan(lngMax.Neg()) {
		lng = lng.Add(fullCircle)
	}
	for lng.GreaterThanOrEqual(lngMax) {
		lng = lng.Sub(fullCircle)
	}
	return lng
}

// latitudePrecision is the height, in degrees, of the final digit's cell for
// a code of the given length. Used to pull latitude 90 just below the pole
// so it encodes to a decodable cell.
func latitudePrecision(codeLength int) decimal.Decimal {
	if codeLength > maxDigits {
		codeLength = maxDigits
	}
	if codeLength <= pairDigits {
		return pairResolutions[(codeLength+1)/2-1]
	}
	return gridLatSizes[codeLength-pairDigits-1]
}
