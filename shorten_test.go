package olc

import (
	"errors"
	"testing"
)

func TestNextShorten(t *testing.T) {
	codec := NextCodec{}

	short, err := codec.Shorten("9F2P2CQH+WW", 50.0398125, 14.4298125)
	if err != nil {
		t.Fatalf("Shorten: %v", err)
	}
	if short != "2CQH+WW" {
		t.Errorf("Shorten = %q, want %q", short, "2CQH+WW")
	}

	// A reference outside every acceptance radius is a no-op, not an error.
	same, err := codec.Shorten("9F2P2CQH+WW", 0, 0)
	if err != nil {
		t.Fatalf("Shorten far reference: %v", err)
	}
	if same != "9F2P2CQH+WW" {
		t.Errorf("Shorten far reference = %q, want the code unchanged", same)
	}
}

func TestNextShortenErrors(t *testing.T) {
	codec := NextCodec{}

	_, err := codec.Shorten("2CQH+WW", 50.04, 14.43)
	if !errors.Is(err, ErrNotFullCode) {
		t.Errorf("Shorten(short code) err = %v, want ErrNotFullCode", err)
	}

	_, err = codec.Shorten("9F2P0000+", 50.5, 14.5)
	if !errors.Is(err, ErrPaddedCode) {
		t.Errorf("Shorten(padded code) err = %v, want ErrPaddedCode", err)
	}

	_, err = codec.Shorten("not a code", 50.04, 14.43)
	if !errors.Is(err, ErrNotFullCode) {
		t.Errorf("Shorten(garbage) err = %v, want ErrNotFullCode", err)
	}
}

func TestNextRecoverNearest(t *testing.T) {
	codec := NextCodec{}

	tests := []struct {
		short    string
		lat, lng float64
		want     string
	}{
		// Reference inside the cell the short code names.
		{"2CQH+WW", 50.0398125, 14.4298125, "9F2P2CQH+WW"},
		// The reference sits just north of a one-degree cell boundary; the
		// naive candidate lands a full cell north and must be pulled back.
		{"X2X2+W2", 50.0001, 14.0001, "8FXPX2X2+W2"},
		// East/west correction across a cell boundary.
		{"2222+22", 49.0001, 13.9999, "8FXP2222+22"},
	}
	for _, tt := range tests {
		got, err := codec.RecoverNearest(tt.short, tt.lat, tt.lng)
		if err != nil {
			t.Fatalf("RecoverNearest(%q, %v, %v): %v", tt.short, tt.lat, tt.lng, err)
		}
		if got != tt.want {
			t.Errorf("RecoverNearest(%q, %v, %v) = %q, want %q",
				tt.short, tt.lat, tt.lng, got, tt.want)
		}
	}

	// A full code passes through, canonicalized to upper case.
	full, err := codec.RecoverNearest("9f2p2cqh+ww", 0, 0)
	if err != nil {
		t.Fatalf("RecoverNearest(full): %v", err)
	}
	if full != "9F2P2CQH+WW" {
		t.Errorf("RecoverNearest(full) = %q", full)
	}

	// Neither short nor full is an argument error.
	_, err = codec.RecoverNearest("9F2P2CQH", 50, 14)
	if !errors.Is(err, ErrNotShortCode) {
		t.Errorf("RecoverNearest(invalid) err = %v, want ErrNotShortCode", err)
	}
}

func TestLegacyShortenBy(t *testing.T) {
	codec := LegacyCodec{}

	short, err := codec.ShortenBy4("+9F2P.2CQHWW", 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy4: %v", err)
	}
	if short != "+2CQHWW" {
		t.Errorf("ShortenBy4 = %q, want %q", short, "+2CQHWW")
	}

	short, err = codec.ShortenBy6("+9F2P.2CQHWW", 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy6: %v", err)
	}
	if short != "+QHWW" {
		t.Errorf("ShortenBy6 = %q, want %q", short, "+QHWW")
	}

	// Out of range references return the code untouched.
	same, err := codec.ShortenBy4("+9F2P.2CQHWW", 51.0, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy4 far reference: %v", err)
	}
	if same != "+9F2P.2CQHWW" {
		t.Errorf("ShortenBy4 far reference = %q, want the code unchanged", same)
	}

	// ShortenBy6 has the tighter 0.0125 degree radius.
	same, err = codec.ShortenBy6("+9F2P.2CQHWW", 50.06, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy6 near-miss reference: %v", err)
	}
	if same != "+9F2P.2CQHWW" {
		t.Errorf("ShortenBy6 near-miss = %q, want the code unchanged", same)
	}
}

func TestLegacyShortenByErrors(t *testing.T) {
	codec := LegacyCodec{}

	_, err := codec.ShortenBy4("+2CQHWW", 50.04, 14.43)
	if !errors.Is(err, ErrNotFullCode) {
		t.Errorf("ShortenBy4(short) err = %v, want ErrNotFullCode", err)
	}

	// Full but outside the trimmable [10,11] digit range.
	_, err = codec.ShortenBy4("+9F2P.2CQH", 50.04, 14.43)
	if !errors.Is(err, ErrCodeLength) {
		t.Errorf("ShortenBy4(8 digits) err = %v, want ErrCodeLength", err)
	}
	_, err = codec.ShortenBy6("+9F2P.2CQHWWHH", 50.04, 14.43)
	if !errors.Is(err, ErrCodeLength) {
		t.Errorf("ShortenBy6(12 digits) err = %v, want ErrCodeLength", err)
	}
}

func TestLegacyRecoverNearest(t *testing.T) {
	codec := LegacyCodec{}

	tests := []struct {
		short    string
		lat, lng float64
		want     string
	}{
		{"+2CQHWW", 50.0398, 14.4298, "+9F2P.2CQHWW"},
		{"+QHWW", 50.0398, 14.4298, "+9F2P.2CQHWW"},
		// Odd-length shorts come from 11-digit originals and must recover
		// the grid digit, not realign into a 10-digit cell.
		{"+2CQHWWH", 50.0398, 14.4298, "+9F2P.2CQHWWH"},
		{"+QHWWH", 50.0398, 14.4298, "+9F2P.2CQHWWH"},
	}
	for _, tt := range tests {
		got, err := codec.RecoverNearest(tt.short, tt.lat, tt.lng)
		if err != nil {
			t.Fatalf("RecoverNearest(%q): %v", tt.short, err)
		}
		if got != tt.want {
			t.Errorf("RecoverNearest(%q, %v, %v) = %q, want %q",
				tt.short, tt.lat, tt.lng, got, tt.want)
		}
	}

	// Fixed-trim shortening and recovery are inverse within the radius.
	full := "+9F2P.2CQHWW"
	short, err := codec.ShortenBy6(full, 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy6: %v", err)
	}
	back, err := codec.RecoverNearest(short, 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("RecoverNearest(%q): %v", short, err)
	}
	if back != full {
		t.Errorf("RecoverNearest(ShortenBy6(%q)) = %q", full, back)
	}

	// The inverse law also holds for 11-digit codes, whose shorts have an
	// odd digit count.
	full = "+9F2P.2CQHWWH"
	short, err = codec.ShortenBy4(full, 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("ShortenBy4: %v", err)
	}
	if short != "+2CQHWWH" {
		t.Errorf("ShortenBy4(%q) = %q, want %q", full, short, "+2CQHWWH")
	}
	back, err = codec.RecoverNearest(short, 50.0398, 14.4298)
	if err != nil {
		t.Fatalf("RecoverNearest(%q): %v", short, err)
	}
	if back != full {
		t.Errorf("RecoverNearest(ShortenBy4(%q)) = %q", full, back)
	}

	// A full code canonicalizes.
	got, err := codec.RecoverNearest("9f2p2cqhww", 0, 0)
	if err != nil {
		t.Fatalf("RecoverNearest(full): %v", err)
	}
	if got != "+9F2P.2CQHWW" {
		t.Errorf("RecoverNearest(full) = %q", got)
	}

	// Valid shape but out of coordinate range: neither short nor full.
	_, err = codec.RecoverNearest("+XF2P.2CQHWW", 50, 14)
	if !errors.Is(err, ErrNotShortCode) {
		t.Errorf("RecoverNearest(out of range) err = %v, want ErrNotShortCode", err)
	}
}
