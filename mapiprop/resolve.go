package mapiprop

import (
	"fmt"

	"github.com/oxmsgkit/oxmsg/internal/binenc"
)

// IsVariableLength reports whether values of t are stored in a dedicated
// sub-stream rather than inline in an entry's 8-byte Value field. This is
// exactly the complement of IsFixedLength: every Multiple* type is
// variable-length, since even a packed array of fixed-width elements needs
// a stream to hold more than 8 bytes of payload.
func IsVariableLength(t PropertyType) bool {
	return !t.IsFixedLength()
}

// SubstreamName derives the compound-file stream name holding a
// variable-length property's payload: the property id and type tag, each
// as 4 uppercase hex digits, joined and prefixed.
func SubstreamName(pid uint16, t PropertyType) string {
	return fmt.Sprintf("__substg1.0_%04X%04X", pid, TagOf(t))
}

// ElementName derives the per-element stream name for the n'th element of
// a Multiple* property whose elements are themselves variable-length
// (String, String8, Binary).
func ElementName(pid uint16, t PropertyType, n int) string {
	return fmt.Sprintf("%s-%08X", SubstreamName(pid, t), n)
}

// packedElementWidth returns the byte width of one element when a
// Multiple* property's underlying type packs its elements directly into
// the main stream (as opposed to storing an array of offsets into
// per-element streams).
func packedElementWidth(elem PropertyType) (width int, packed bool) {
	switch elem {
	case Integer16:
		return 2, true
	case Integer32, Floating32:
		return 4, true
	case Floating64, Currency, FloatingTime, Integer64, Time:
		return 8, true
	case Guid:
		return 16, true
	default:
		return 0, false
	}
}

// ResolveVariable resolves a variable-length property entry's payload
// using open, a callback over the owning storage's children (normally
// internal/cfbio.Adapter.OpenStream). Present is false, with a non-nil
// Warning, when the expected stream could not be opened: a missing
// sub-stream degrades the property rather than aborting the parse.
func ResolveVariable(pid uint16, entry Entry, open func(name string) ([]byte, bool)) (PValue, *Warning) {
	if !IsVariableLength(entry.PType) {
		pv, err := DecodeFixed(entry.PType, entry.Value)
		if err != nil {
			return PValue{Type: entry.PType}, &Warning{Path: SubstreamName(pid, entry.PType), Err: err}
		}
		return pv, nil
	}

	name := SubstreamName(pid, entry.PType)
	data, ok := open(name)
	if !ok {
		return PValue{Type: entry.PType, Present: false}, &Warning{
			Path: name,
			Err:  fmt.Errorf("mapiprop: variable-length stream not found for pid %#04x type %s", pid, entry.PType),
		}
	}

	if entry.PType.IsMultiValued() {
		return resolveMultiValue(pid, entry.PType, data, open)
	}
	return resolveSingleVariable(entry.PType, data, name)
}

func resolveSingleVariable(t PropertyType, data []byte, streamName string) (PValue, *Warning) {
	pv := PValue{Type: t, Present: true}
	switch t {
	case String:
		s, err := binenc.DecodeUTF16LE(data)
		if err != nil {
			return PValue{Type: t}, &Warning{Path: streamName, Err: err}
		}
		pv.Str = s
	case String8:
		s, err := decodeString8(data)
		if err != nil {
			return PValue{Type: t}, &Warning{Path: streamName, Err: err}
		}
		pv.Str = s
	case Guid:
		g, err := binenc.ParseGUID(data)
		if err != nil {
			return PValue{Type: t}, &Warning{Path: streamName, Err: err}
		}
		pv.GUID = g
	case Binary, ServerId, Restriction, RuleAction:
		pv.Bin = append([]byte(nil), data...)
	default:
		pv.Bin = append([]byte(nil), data...)
	}
	return pv, nil
}

func resolveMultiValue(pid uint16, t PropertyType, main []byte, open func(name string) ([]byte, bool)) (PValue, *Warning) {
	elem := t.singleValuedOf()
	pv := PValue{Type: t, Present: true}

	if width, packed := packedElementWidth(elem); packed {
		if len(main)%width != 0 {
			return PValue{Type: t}, &Warning{
				Path: SubstreamName(pid, t),
				Err:  fmt.Errorf("mapiprop: packed multi-value stream length %d not a multiple of element width %d", len(main), width),
			}
		}
		count := len(main) / width
		pv.Multi = make([]PValue, 0, count)
		for i := 0; i < count; i++ {
			chunk := main[i*width : (i+1)*width]
			if elem == Guid {
				g, gerr := binenc.ParseGUID(chunk)
				if gerr != nil {
					return PValue{Type: t}, &Warning{Path: SubstreamName(pid, t), Err: gerr}
				}
				pv.Multi = append(pv.Multi, PValue{Type: Guid, Present: true, GUID: g})
				continue
			}
			var value [8]byte
			copy(value[:], chunk)
			ev, err := DecodeFixed(elem, value)
			if err != nil {
				return PValue{Type: t}, &Warning{Path: SubstreamName(pid, t), Err: err}
			}
			pv.Multi = append(pv.Multi, ev)
		}
		return pv, nil
	}

	// Variable-width elements (String, String8, Binary): the main stream
	// holds one uint32 length per element, and each element's bytes live
	// in its own per-index stream.
	if len(main)%4 != 0 {
		return PValue{Type: t}, &Warning{
			Path: SubstreamName(pid, t),
			Err:  fmt.Errorf("mapiprop: multi-value length array %d not a multiple of 4", len(main)),
		}
	}
	count := len(main) / 4
	pv.Multi = make([]PValue, 0, count)
	for i := 0; i < count; i++ {
		elemName := ElementName(pid, t, i)
		data, ok := open(elemName)
		if !ok {
			pv.Multi = append(pv.Multi, PValue{Type: elem, Present: false})
			continue
		}
		ev, warn := resolveSingleVariable(elem, data, elemName)
		if warn != nil {
			pv.Multi = append(pv.Multi, PValue{Type: elem, Present: false})
			continue
		}
		pv.Multi = append(pv.Multi, ev)
	}
	return pv, nil
}
