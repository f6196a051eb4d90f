package binenc

import (
	"errors"
	"testing"
	"time"
)

func TestReadFixedWidth(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	if v, err := ReadU16LE(b[:2]); err != nil || v != 0x0201 {
		t.Fatalf("ReadU16LE = %#x, %v", v, err)
	}
	if v, err := ReadI16LE([]byte{0xFF, 0xFF}); err != nil || v != -1 {
		t.Fatalf("ReadI16LE = %d, %v", v, err)
	}
	if v, err := ReadU32LE(b[:4]); err != nil || v != 0x04030201 {
		t.Fatalf("ReadU32LE = %#x, %v", v, err)
	}
	if v, err := ReadI32LE([]byte{0xFF, 0xFF, 0xFF, 0xFF}); err != nil || v != -1 {
		t.Fatalf("ReadI32LE = %d, %v", v, err)
	}
	if v, err := ReadU64LE(b); err != nil || v != 0x0807060504030201 {
		t.Fatalf("ReadU64LE = %#x, %v", v, err)
	}
	if v, err := ReadI64LE(b); err != nil || v != 0x0807060504030201 {
		t.Fatalf("ReadI64LE = %d, %v", v, err)
	}

	if _, err := ReadU16LE([]byte{0x01}); !errors.Is(err, ErrShortInput) {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
	if _, err := ReadU32LE(nil); !errors.Is(err, ErrShortInput) {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	// "Hello" encoded UTF-16LE.
	b := []byte{0x48, 0x00, 0x65, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x6F, 0x00}
	s, err := DecodeUTF16LE(b)
	if err != nil {
		t.Fatalf("DecodeUTF16LE: %v", err)
	}
	if s != "Hello" {
		t.Fatalf("DecodeUTF16LE = %q, want %q", s, "Hello")
	}

	if _, err := DecodeUTF16LE([]byte{0x00}); !errors.Is(err, ErrOddByteCount) {
		t.Fatalf("expected ErrOddByteCount, got %v", err)
	}
}

func TestParseGUID(t *testing.T) {
	// PS_MAPI as stored on disk (OLE layout), from property_sets.rs.
	wire := []byte{0x28, 0x03, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	g, err := ParseGUID(wire)
	if err != nil {
		t.Fatalf("ParseGUID: %v", err)
	}
	want := "00020328-0000-0000-C000-000000000046"
	if g.String() != want {
		t.Fatalf("ParseGUID = %s, want %s", g.String(), want)
	}

	if _, err := ParseGUID(make([]byte, 15)); !errors.Is(err, ErrShortInput) {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
}

func TestFiletimeRoundTrip(t *testing.T) {
	cases := []int64{
		filetimeEpochDeltaTicks,               // 1970-01-01
		filetimeEpochDeltaTicks + 10_000_000,   // one second after epoch
		filetimeEpochDeltaTicks - 10_000_000,   // one second before epoch
		132514656000000000,                    // 2020-12-03T10:40:00Z
		0,                                      // 1601-01-01, far pre-epoch
	}
	for _, ticks := range cases {
		ut, err := FiletimeToUTC(ticks)
		if err != nil {
			t.Fatalf("FiletimeToUTC(%d): %v", ticks, err)
		}
		if ut.Nanosecond() < 0 || ut.Nanosecond() >= 1_000_000_000 {
			t.Fatalf("FiletimeToUTC(%d) nanosecond out of range: %d", ticks, ut.Nanosecond())
		}
		back, err := UTCToFiletime(ut)
		if err != nil {
			t.Fatalf("UTCToFiletime: %v", err)
		}
		if back != ticks {
			t.Fatalf("round trip mismatch: %d != %d", back, ticks)
		}
	}
}

func TestFiletimeDeliveryTimeScenario(t *testing.T) {
	ut, err := FiletimeToUTC(132514656000000000)
	if err != nil {
		t.Fatalf("FiletimeToUTC: %v", err)
	}
	want := time.Date(2020, 12, 3, 10, 40, 0, 0, time.UTC)
	if !ut.Equal(want) {
		t.Fatalf("FiletimeToUTC = %s, want %s", ut, want)
	}
}
