package mapiprop

import (
	"fmt"
	"hash/crc32"

	"github.com/oxmsgkit/oxmsg/internal/binenc"
)

// Warning is a non-fatal diagnostic recorded while walking a malformed but
// recoverable sub-structure. Path identifies the compound-file stream or
// logical structure the warning concerns.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// NamedPropertyKind discriminates the two addressing schemes MS-OXMSG's
// Entry Stream supports for a named property.
type NamedPropertyKind int

const (
	// KindNumerical identifies a property by a 32-bit LID within its
	// property set.
	KindNumerical NamedPropertyKind = iota
	// KindString identifies a property by a UTF-16 name within its
	// property set, stored in the String Stream.
	KindString
)

func (k NamedPropertyKind) String() string {
	if k == KindString {
		return "string"
	}
	return "numerical"
}

// NamedProperty is one resolved entry of the Named Property Map: a runtime
// property id (>= 0x8000) bound to a property set plus either a LID or a
// name.
type NamedProperty struct {
	Set    PropertySet
	Kind   NamedPropertyKind
	LID    uint32
	Name   string
	Index  uint16
	PropID uint16 // 0x8000 + Index, the runtime tag used elsewhere in the property stream.
}

// NameIDMap is the parsed Named Property Map for one message: every
// runtime property id (>= 0x8000) used by that message's property streams,
// resolved back to its defining property set and LID/name.
type NameIDMap struct {
	entries []NamedProperty
	byPID   map[uint16]NamedProperty
}

// Lookup resolves a runtime property id to its NamedProperty, if the map
// carries an entry for it.
func (m *NameIDMap) Lookup(propID uint16) (NamedProperty, bool) {
	if m == nil {
		return NamedProperty{}, false
	}
	np, ok := m.byPID[propID]
	return np, ok
}

// Entries returns every parsed NamedProperty, in Entry Stream order.
func (m *NameIDMap) Entries() []NamedProperty {
	if m == nil {
		return nil
	}
	return m.entries
}

const (
	entryStreamRecordLen = 8
	guidStreamRecordLen  = 16

	// The first two GUID-index slots are implicit: index 1 is PS_MAPI,
	// index 2 is PS_PUBLIC_STRINGS. The GUID Stream itself only carries
	// entries for index 3 and above (MS-OXMSG 2.2.3.3).
	guidIndexMAPI          = 1
	guidIndexPublicStrings = 2
	guidIndexStreamBase    = 3
)

// ParseNameIDMap decodes the three streams of a "__nameid_version1.0"
// storage into a NameIDMap. Malformed trailing bytes in any of the three
// streams are tolerated: parsing simply stops at the last complete record
// and a Warning is appended, rather than aborting.
func ParseNameIDMap(guidStream, entryStream, stringStream []byte) (*NameIDMap, []Warning, error) {
	var warnings []Warning

	guids := make([]binenc.GUID, 0, len(guidStream)/guidStreamRecordLen)
	for off := 0; off+guidStreamRecordLen <= len(guidStream); off += guidStreamRecordLen {
		g, err := binenc.ParseGUID(guidStream[off : off+guidStreamRecordLen])
		if err != nil {
			warnings = append(warnings, Warning{Path: "__substg1.0_00020102", Err: err})
			break
		}
		guids = append(guids, g)
	}
	if rem := len(guidStream) % guidStreamRecordLen; rem != 0 {
		warnings = append(warnings, Warning{
			Path: "__substg1.0_00020102",
			Err:  fmt.Errorf("mapiprop: GUID stream length %d not a multiple of %d", len(guidStream), guidStreamRecordLen),
		})
	}

	m := &NameIDMap{byPID: make(map[uint16]NamedProperty)}

	for off := 0; off+entryStreamRecordLen <= len(entryStream); off += entryStreamRecordLen {
		rec := entryStream[off : off+entryStreamRecordLen]

		identifier, _ := binenc.ReadU32LE(rec[0:4])
		indexAndKind, _ := binenc.ReadU16LE(rec[4:6])
		propIndex, _ := binenc.ReadU16LE(rec[6:8])

		kind := KindNumerical
		if indexAndKind&0x1 == 1 {
			kind = KindString
		}
		guidIndexNum := indexAndKind >> 1

		set, err := resolvePropertySet(guidIndexNum, guids)
		if err != nil {
			warnings = append(warnings, Warning{Path: "__substg1.0_00030102", Err: err})
			continue
		}

		np := NamedProperty{
			Set:    set,
			Kind:   kind,
			Index:  propIndex,
			PropID: 0x8000 + propIndex,
		}

		switch kind {
		case KindNumerical:
			np.LID = identifier
		case KindString:
			name, err := readStringStreamEntry(stringStream, identifier)
			if err != nil {
				warnings = append(warnings, Warning{
					Path: "__substg1.0_00040102",
					Err:  fmt.Errorf("string named property at offset %#x: %w", identifier, err),
				})
				continue
			}
			np.Name = name
		}

		m.entries = append(m.entries, np)
		m.byPID[np.PropID] = np
	}
	if rem := len(entryStream) % entryStreamRecordLen; rem != 0 {
		warnings = append(warnings, Warning{
			Path: "__substg1.0_00030102",
			Err:  fmt.Errorf("mapiprop: Entry stream length %d not a multiple of %d", len(entryStream), entryStreamRecordLen),
		})
	}

	return m, warnings, nil
}

// resolvePropertySet maps a guidIndexNum (the upper 15 bits of the Entry
// Stream's IndexAndKindInformation field) to its PropertySet, using the two
// implicit slots plus the GUID Stream's own array.
func resolvePropertySet(guidIndexNum uint16, guids []binenc.GUID) (PropertySet, error) {
	switch guidIndexNum {
	case guidIndexMAPI:
		return PSMAPI, nil
	case guidIndexPublicStrings:
		return PSPublicStrings, nil
	default:
		i := int(guidIndexNum) - guidIndexStreamBase
		if i < 0 || i >= len(guids) {
			return PropertySet{}, fmt.Errorf("mapiprop: GUID index %d out of range (have %d stream GUIDs)", guidIndexNum, len(guids))
		}
		return PropertySetFromGUID(guids[i]), nil
	}
}

// readStringStreamEntry reads the length-prefixed, 4-byte-aligned UTF-16LE
// name at the given byte offset into the String Stream.
func readStringStreamEntry(stringStream []byte, offset uint32) (string, error) {
	off := int(offset)
	if off < 0 || off+4 > len(stringStream) {
		return "", binenc.ErrShortInput
	}
	length, _ := binenc.ReadU32LE(stringStream[off : off+4])
	start := off + 4
	end := start + int(length)
	if end > len(stringStream) {
		return "", binenc.ErrShortInput
	}
	return binenc.DecodeUTF16LE(stringStream[start:end])
}

// BucketStreamName derives the hashed sub-storage stream name MS-OXMSG
// writers use to store a named property's per-recipient or per-attachment
// override bucket. For a string-kind named property the routing hash is
// the CRC-32 ISO-HDLC checksum of the UTF-16LE name bytes; for a
// numerical-kind property it is the raw 32-bit identifier. MappingChecksum
// compares this derived name against the name actually present in a
// compound file to flag writers that deviate from the documented bucket
// scheme.
func BucketStreamName(kind NamedPropertyKind, identifierOrName []byte, guidIndexNum uint16) string {
	var h uint32
	if kind == KindString {
		h = crc32.ChecksumIEEE(identifierOrName)
	} else if len(identifierOrName) >= 4 {
		v, _ := binenc.ReadU32LE(identifierOrName[:4])
		h = v
	}

	kindBit := uint16(0)
	if kind == KindString {
		kindBit = 1
	}
	streamID := 0x1000 + ((uint16(h) ^ ((guidIndexNum << 1) | kindBit)) % 0x1F)
	tag := (uint32(streamID) << 16) | 0x00000102
	return fmt.Sprintf("__substg1.0_%08X", tag)
}

// MappingChecksum reports a Warning when the stream name actually present
// for a named property's bucket storage does not match the name
// BucketStreamName derives for it. A mismatch does not abort parsing: the
// property is still read from whichever stream was actually found, and the
// warning exists purely as a diagnostic that the writer used a
// non-standard hash.
func MappingChecksum(np NamedProperty, identifierOrName []byte, guidIndexNum uint16, actualStreamName string) *Warning {
	want := BucketStreamName(np.Kind, identifierOrName, guidIndexNum)
	if want == actualStreamName {
		return nil
	}
	return &Warning{
		Path: actualStreamName,
		Err:  fmt.Errorf("mapiprop: derived bucket stream name %s does not match %s for named property %#04x", want, actualStreamName, np.PropID),
	}
}
