package olc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// encodePairs converts shifted coordinates into pair-stage digits.
// adjLat must be in [0, 180) and adjLng in [0, 360). Digits alternate
// latitude first, then longitude, one pair per resolution level; an odd n
// stops after the latitude digit of the last pair. It returns the digits and
// the coordinate remainders within the final cell, which feed the grid
// stage.
func encodePairs(adjLat, adjLng decimal.Decimal, n int) (string, decimal.Decimal, decimal.Decimal) {
	var b strings.Builder
	b.Grow(n)
	for emitted := 0; emitted < n; {
		level := emitted / 2
		place := pairResolutions[level]
		recip := pairReciprocals[level]

		d := adjLat.Mul(recip).Floor()
		adjLat = adjLat.Sub(d.Mul(place))
		b.WriteByte(alphabet[d.IntPart()])
		emitted++
		if emitted == n {
			break
		}

		d = adjLng.Mul(recip).Floor()
		adjLng = adjLng.Sub(d.Mul(place))
		b.WriteByte(alphabet[d.IntPart()])
		emitted++
	}
	return b.String(), adjLat, adjLng
}

// decodePairs converts pair-stage digits back into an area. Characters at
// even offsets accumulate latitude, odd offsets longitude. digits must hold
// between 2 and 10 valid alphabet characters.
func decodePairs(digits string) decArea {
	latLo, lngLo := decimal.Zero, decimal.Zero
	for i := 0; i < len(digits); i++ {
		v := decimal.NewFromInt(int64(digitValue(digits[i])))
		place := pairResolutions[i/2]
		if i%2 == 0 {
			latLo = latLo.Add(v.Mul(place))
		} else {
			lngLo = lngLo.Add(v.Mul(place))
		}
	}
	n := len(digits)
	latHi := latLo.Add(pairResolutions[(n-1)/2])
	lngHi := lngLo.Add(pairResolutions[n/2-1])
	return decArea{
		latLo:      latLo.Sub(latMax),
		lngLo:      lngLo.Sub(lngMax),
		latHi:      latHi.Sub(latMax),
		lngHi:      lngHi.Sub(lngMax),
		codeLength: n,
	}
}
