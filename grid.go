package olc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// encodeGrid converts the remainders left over from a full pair stage into
// grid-refinement digits. Each digit names a cell in a 4x5 grid (columns
// refine longitude, rows latitude) as row*4+col. latRem and lngRem must be
// within the final pair cell, [0, 0.000125).
func encodeGrid(latRem, lngRem decimal.Decimal, n int) string {
	if n > maxDigits-pairDigits {
		n = maxDigits - pairDigits
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		row := latRem.Mul(gridLatReciprocals[i]).Floor()
		col := lngRem.Mul(gridLngReciprocals[i]).Floor()
		latRem = latRem.Sub(row.Mul(gridLatSizes[i]))
		lngRem = lngRem.Sub(col.Mul(gridLngSizes[i]))
		b.WriteByte(alphabet[row.IntPart()*gridCols+col.IntPart()])
	}
	return b.String()
}

// decodeGrid converts grid digits into a low-corner offset and the size of
// the final cell. The offset is relative: the caller adds it to the
// pair-stage low corner.
func decodeGrid(digits string) (latOff, lngOff, latSize, lngSize decimal.Decimal) {
	latOff, lngOff = decimal.Zero, decimal.Zero
	last := 0
	for i := 0; i < len(digits) && i < maxDigits-pairDigits; i++ {
		v := digitValue(digits[i])
		row := int64(v / gridCols)
		col := int64(v % gridCols)
		latOff = latOff.Add(decimal.NewFromInt(row).Mul(gridLatSizes[i]))
		lngOff = lngOff.Add(decimal.NewFromInt(col).Mul(gridLngSizes[i]))
		last = i
	}
	return latOff, lngOff, gridLatSizes[last], gridLngSizes[last]
}

// encodeDigits produces the significant digits of a code, pair stage plus
// grid stage, without any separator or padding. lat and lng must already be
// clipped and normalized.
func encodeDigits(lat, lng decimal.Decimal, n int) string {
	adjLat := lat.Add(latMax)
	adjLng := lng.Add(lngMax)
	pairCount := n
	if pairCount > pairDigits {
		pairCount = pairDigits
	}
	digits, latRem, lngRem := encodePairs(adjLat, adjLng, pairCount)
	if n > pairDigits {
		digits += encodeGrid(latRem, lngRem, n-pairDigits)
	}
	return digits
}

// decodeDigits decodes a separator- and padding-free digit string. Anything
// past the precision cap is ignored.
func decodeDigits(digits string) decArea {
	if len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	pairPart := digits
	if len(pairPart) > pairDigits {
		pairPart = pairPart[:pairDigits]
	}
	a := decodePairs(pairPart)
	if len(digits) > pairDigits {
		latOff, lngOff, latSize, lngSize := decodeGrid(digits[pairDigits:])
		a.latLo = a.latLo.Add(latOff)
		a.lngLo = a.lngLo.Add(lngOff)
		a.latHi = a.latLo.Add(latSize)
		a.lngHi = a.lngLo.Add(lngSize)
		a.codeLength = len(digits)
	}
	return a
}
