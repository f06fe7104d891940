// Package olc implements the Open Location Code ("plus code") geocoding
// scheme: a bidirectional codec between latitude/longitude coordinates and
// short alphanumeric codes that denote rectangular areas on the Earth's
// surface.
//
// Two wire formats of the scheme are supported. The revised "next" format is
// the current one, with a mandatory '+' separator and '0' padding
// (e.g. "9F2P2CQH+WW"). The legacy format uses a leading '+' prefix and a '.'
// separator after the fourth digit (e.g. "+9F2P.2CQHWW"). Both formats share
// the same 20-symbol alphabet and the same positional encoding: up to ten
// base-20 digits alternating latitude/longitude, followed by optional 4x5
// grid-refinement digits for higher precision.
//
// The package-level functions operate on the next format. Use ForVersion or
// the LegacyCodec/NextCodec types to pick a format explicitly, and the Code
// value type for a lazily evaluated view of a single code string.
//
// All operations are pure functions over their inputs and are safe for
// concurrent use. Coordinate arithmetic is performed in decimal, and decoded
// bounds are reported rounded to 11 decimal digits (ties away from zero) so
// results are stable across platforms.
package olc
