// Package binenc implements the little-endian byte primitives that every
// MAPI property decoder in this module builds on: fixed-width integer and
// float reads, UTF-16LE string decoding, OLE GUID byte-order normalisation,
// and Win32 FILETIME conversion.
package binenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf16"
)

// ErrShortInput is returned whenever a fixed-width read does not have
// enough bytes available.
var ErrShortInput = errors.New("binenc: short input")

// ErrOddByteCount is returned by DecodeUTF16LE when given a byte slice of
// odd length, since UTF-16 code units are always two bytes.
var ErrOddByteCount = errors.New("binenc: odd byte count")

// ErrTimeOverflow is returned when a FILETIME value cannot be represented
// without overflowing the signed 64-bit arithmetic used to relate it to the
// Unix epoch.
var ErrTimeOverflow = errors.New("binenc: filetime overflow")

func need(b []byte, n int) error {
	if len(b) < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortInput, n, len(b))
	}
	return nil
}

// ReadU16LE decodes an unsigned 16-bit little-endian integer.
func ReadU16LE(b []byte) (uint16, error) {
	if err := need(b, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16LE decodes a signed 16-bit little-endian integer.
func ReadI16LE(b []byte) (int16, error) {
	v, err := ReadU16LE(b)
	return int16(v), err
}

// ReadU32LE decodes an unsigned 32-bit little-endian integer.
func ReadU32LE(b []byte) (uint32, error) {
	if err := need(b, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32LE decodes a signed 32-bit little-endian integer.
func ReadI32LE(b []byte) (int32, error) {
	v, err := ReadU32LE(b)
	return int32(v), err
}

// ReadU64LE decodes an unsigned 64-bit little-endian integer.
func ReadU64LE(b []byte) (uint64, error) {
	if err := need(b, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64LE decodes a signed 64-bit little-endian integer.
func ReadI64LE(b []byte) (int64, error) {
	v, err := ReadU64LE(b)
	return int64(v), err
}

// ReadF32LE decodes an IEEE-754 single-precision little-endian float.
func ReadF32LE(b []byte) (float32, error) {
	v, err := ReadU32LE(b)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64LE decodes an IEEE-754 double-precision little-endian float.
func ReadF64LE(b []byte) (float64, error) {
	v, err := ReadU64LE(b)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// DecodeUTF16LE interprets b as a sequence of little-endian UTF-16 code
// units and returns the decoded string. Unpaired surrogates are replaced
// with the Unicode replacement character rather than failing the decode,
// matching Outlook's own tolerance of malformed string properties.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddByteCount
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2 : i*2+2])
	}
	return string(utf16.Decode(units)), nil
}

// GUID is a 16-byte globally unique identifier in canonical (display)
// byte order: the order in which Windows prints a GUID as
// "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", not the order it is stored on
// disk inside an OLE structure.
type GUID [16]byte

// String renders the canonical "8-4-4-4-12" hyphenated hex form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		binary.BigEndian.Uint32(g[0:4]),
		binary.BigEndian.Uint16(g[4:6]),
		binary.BigEndian.Uint16(g[6:8]),
		binary.BigEndian.Uint16(g[8:10]),
		g[10:16])
}

// ParseGUID reads a 16-byte OLE-layout GUID and normalises it to canonical
// byte order: the first three fields (4 bytes, 2 bytes, 2 bytes) are
// stored little-endian on disk and are byte-swapped here, while the final
// two fields (2 bytes, 6 bytes) are already stored big-endian and pass
// through unchanged.
func ParseGUID(b []byte) (GUID, error) {
	var g GUID
	if err := need(b, 16); err != nil {
		return g, err
	}
	binary.BigEndian.PutUint32(g[0:4], binary.LittleEndian.Uint32(b[0:4]))
	binary.BigEndian.PutUint16(g[4:6], binary.LittleEndian.Uint16(b[4:6]))
	binary.BigEndian.PutUint16(g[6:8], binary.LittleEndian.Uint16(b[6:8]))
	copy(g[8:16], b[8:16])
	return g, nil
}

// ticksPerSecond is the number of 100-nanosecond FILETIME ticks in a
// second.
const ticksPerSecond = 10_000_000

// filetimeEpochDeltaTicks is the number of 100-nanosecond ticks between
// 1601-01-01 00:00:00 UTC (the FILETIME epoch) and 1970-01-01 00:00:00 UTC
// (the Unix epoch).
const filetimeEpochDeltaTicks = 116_444_736_000_000_000

// FiletimeToUTC converts a Win32 FILETIME (100-nanosecond ticks since
// 1601-01-01 UTC) into a UTC time.Time. The conversion subtracts the
// epoch delta and splits the remainder into whole seconds and a
// nanosecond residual in [0, 1e9), flooring toward negative infinity so
// pre-epoch timestamps keep a correctly-signed seconds component with a
// non-negative nanosecond residual.
func FiletimeToUTC(ticks int64) (time.Time, error) {
	delta := ticks - filetimeEpochDeltaTicks
	sec := delta / ticksPerSecond
	rem := delta % ticksPerSecond
	if rem < 0 {
		sec--
		rem += ticksPerSecond
	}
	nanos := rem * 100
	return time.Unix(sec, nanos).UTC(), nil
}

// UTCToFiletime is the inverse of FiletimeToUTC. It is exact for
// nanosecond values that are multiples of 100.
func UTCToFiletime(t time.Time) (int64, error) {
	sec := t.Unix()
	nanos := int64(t.Nanosecond())
	ticks := sec*ticksPerSecond + nanos/100
	result := ticks + filetimeEpochDeltaTicks
	// Detect the int64 overflow that would silently wrap in the addition
	// above.
	if ticks > math.MaxInt64-filetimeEpochDeltaTicks {
		return 0, ErrTimeOverflow
	}
	return result, nil
}
