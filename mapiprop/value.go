package mapiprop

import (
	"fmt"
	"time"

	"github.com/oxmsgkit/oxmsg/internal/binenc"
)

// PValue is a closed tagged union over every decoded MAPI property value.
// Only the field matching Type is meaningful; the rest are left zero. A
// Go switch on Type replaces a runtime type assertion at every call site.
type PValue struct {
	Type PropertyType

	// Present is false when a variable-length entry's sub-stream could
	// not be opened; the fixed entry is still retained by the caller, but
	// this value carries no payload.
	Present bool

	I16     int16
	I32     int32
	I64     int64
	F32     float32
	F64     float64
	Bool    bool
	Cur     int64       // Currency: 64-bit value scaled by 10,000.
	AppTime float64     // FloatingTime: OLE Automation date (days since 1899-12-30).
	Time    time.Time   // Time: Win32 FILETIME decoded to UTC.
	GUID    binenc.GUID // Guid.
	Str     string      // String / String8.
	Bin     []byte      // Binary / ServerId / Restriction / RuleAction.
	Multi   []PValue    // Ordered elements for every Multiple* type.
}

// DecodeFixed decodes a property value stored inline in a fixed entry's
// 8-byte Value field. It only handles types for which IsFixedLength
// reports true; variable-length and Multiple* types resolve through
// ResolveVariable instead.
func DecodeFixed(t PropertyType, value [8]byte) (PValue, error) {
	pv := PValue{Type: t, Present: true}
	b := value[:]

	switch t {
	case Unspecified, Null:
		pv.Present = false
	case Integer16:
		v, err := binenc.ReadI16LE(b[:2])
		if err != nil {
			return PValue{}, err
		}
		pv.I16 = v
	case Integer32, Object:
		v, err := binenc.ReadI32LE(b[:4])
		if err != nil {
			return PValue{}, err
		}
		pv.I32 = v
	case Floating32:
		v, err := binenc.ReadF32LE(b[:4])
		if err != nil {
			return PValue{}, err
		}
		pv.F32 = v
	case Floating64:
		v, err := binenc.ReadF64LE(b[:8])
		if err != nil {
			return PValue{}, err
		}
		pv.F64 = v
	case Currency:
		v, err := binenc.ReadI64LE(b[:8])
		if err != nil {
			return PValue{}, err
		}
		pv.Cur = v
	case FloatingTime:
		v, err := binenc.ReadF64LE(b[:8])
		if err != nil {
			return PValue{}, err
		}
		pv.AppTime = v
	case ErrorCode:
		v, err := binenc.ReadU32LE(b[:4])
		if err != nil {
			return PValue{}, err
		}
		pv.I32 = int32(v)
	case Boolean:
		v, err := binenc.ReadU16LE(b[:2])
		if err != nil {
			return PValue{}, err
		}
		pv.Bool = v != 0
	case Integer64:
		v, err := binenc.ReadI64LE(b[:8])
		if err != nil {
			return PValue{}, err
		}
		pv.I64 = v
	case Time:
		ticks, err := binenc.ReadI64LE(b[:8])
		if err != nil {
			return PValue{}, err
		}
		tm, err := binenc.FiletimeToUTC(ticks)
		if err != nil {
			return PValue{}, err
		}
		pv.Time = tm
	default:
		return PValue{}, fmt.Errorf("mapiprop: %s is not a fixed-length type", t)
	}
	return pv, nil
}
