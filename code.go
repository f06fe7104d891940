package olc

import (
	"fmt"
	"sync"
)

// Code is a lazily evaluated view of a single code string under one format
// version. Validity flags and the decoded area are computed on first access
// and cached; a Code is safe for concurrent use.
type Code struct {
	value   string
	version Version
	codec   Codec

	area  func() (Area, error)
	valid func() bool
	short func() bool
	full  func() bool
}

// New wraps a code string in the given format version. The string is not
// validated up front; use IsValid, IsShort and IsFull.
func New(value string, version Version) *Code {
	c := &Code{value: value, version: version, codec: ForVersion(version)}
	c.area = sync.OnceValues(func() (Area, error) { return c.codec.Decode(c.value) })
	c.valid = sync.OnceValue(func() bool { return c.codec.IsValid(c.value) })
	c.short = sync.OnceValue(func() bool { return c.codec.IsShort(c.value) })
	c.full = sync.OnceValue(func() bool { return c.codec.IsFull(c.value) })
	return c
}

// FromLatLng encodes a coordinate into a Code of the given format version.
func FromLatLng(lat, lng float64, codeLength int, version Version) (*Code, error) {
	s, err := ForVersion(version).Encode(lat, lng, codeLength)
	if err != nil {
		return nil, err
	}
	return New(s, version), nil
}

// Value returns the code string exactly as it was supplied or produced.
func (c *Code) Value() string { return c.value }

// String returns the code string.
func (c *Code) String() string { return c.value }

// Version returns the format version the code is interpreted under.
func (c *Code) Version() Version { return c.version }

// IsValid reports whether the code is structurally valid.
func (c *Code) IsValid() bool { return c.valid() }

// IsShort reports whether the code is a short code.
func (c *Code) IsShort() bool { return c.short() }

// IsFull reports whether the code is a full code.
func (c *Code) IsFull() bool { return c.full() }

// Area returns the decoded area of a full code. The result is computed once
// and cached.
func (c *Code) Area() (Area, error) { return c.area() }

// Convert re-expresses the code in another format version by decoding it and
// re-encoding its center at the same length. The represented area is
// preserved; the rendering (separator, padding, prefix) follows the target
// version. Conversion of a non-full code fails.
func (c *Code) Convert(to Version) (*Code, error) {
	if to == c.version {
		return c, nil
	}
	var (
		a   decArea
		err error
	)
	switch c.version {
	case VersionLegacy:
		a, err = decodeLegacy(c.value)
	default:
		a, err = decodeNext(c.value)
	}
	if err != nil {
		return nil, err
	}
	cLat, cLng := a.center()
	var s string
	if to == VersionLegacy {
		s, err = encodeLegacy(cLat, cLng, a.codeLength)
	} else {
		s, err = encodeNext(cLat, cLng, a.codeLength)
	}
	if err != nil {
		return nil, err
	}
	return New(s, to), nil
}

// Shorten trims the code against a reference location. Only the next format
// defines variable-length shortening.
func (c *Code) Shorten(lat, lng float64) (*Code, error) {
	nc, ok := c.codec.(NextCodec)
	if !ok {
		return nil, fmt.Errorf("%w: shorten is defined by the next format", ErrUnsupportedOperation)
	}
	s, err := nc.Shorten(c.value, lat, lng)
	if err != nil {
		return nil, err
	}
	return New(s, c.version), nil
}

// ShortenBy4 trims four leading digits. Only the legacy format defines
// fixed-length shortening.
func (c *Code) ShortenBy4(lat, lng float64) (*Code, error) {
	return c.shortenFixed(4, lat, lng)
}

// ShortenBy6 trims six leading digits. Only the legacy format defines
// fixed-length shortening.
func (c *Code) ShortenBy6(lat, lng float64) (*Code, error) {
	return c.shortenFixed(6, lat, lng)
}

func (c *Code) shortenFixed(n int, lat, lng float64) (*Code, error) {
	lc, ok := c.codec.(LegacyCodec)
	if !ok {
		return nil, fmt.Errorf("%w: fixed-length shortening is defined by the legacy format", ErrUnsupportedOperation)
	}
	var (
		s   string
		err error
	)
	if n == 4 {
		s, err = lc.ShortenBy4(c.value, lat, lng)
	} else {
		s, err = lc.ShortenBy6(c.value, lat, lng)
	}
	if err != nil {
		return nil, err
	}
	return New(s, c.version), nil
}

// RecoverNearest completes the code against a reference location.
func (c *Code) RecoverNearest(lat, lng float64) (*Code, error) {
	s, err := c.codec.RecoverNearest(c.value, lat, lng)
	if err != nil {
		return nil, err
	}
	return New(s, c.version), nil
}
