// Package mapiprop is the MAPI property decoding layer: the closed
// PropertyType/PropertySet catalogues, the Named Property Map, the
// property-stream parser, and the variable-length resolver that sit on
// top of the generic compound-file adapter in internal/cfbio.
package mapiprop

import "fmt"

// PropertyType is the closed, bit-exact enumeration of MAPI property
// types. Both directions of the tag<->type mapping are total: TypeOf
// never fails (an unrecognised tag decodes to Null, matching the lenient
// posture the rest of this package takes toward malformed input), and
// TagOf is defined for every named constant below.
type PropertyType uint16

// Singular (non-multi-valued) property types, bit-exact against the
// MS-OXCDATA property type tag table.
const (
	Unspecified  PropertyType = 0x0000
	Null         PropertyType = 0x0001
	Integer16    PropertyType = 0x0002
	Integer32    PropertyType = 0x0003
	Floating32   PropertyType = 0x0004
	Floating64   PropertyType = 0x0005
	Currency     PropertyType = 0x0006
	FloatingTime PropertyType = 0x0007
	ErrorCode    PropertyType = 0x000A
	Boolean      PropertyType = 0x000B
	Object       PropertyType = 0x000D
	Integer64    PropertyType = 0x0014
	String8      PropertyType = 0x001E
	String       PropertyType = 0x001F
	Time         PropertyType = 0x0040
	Guid         PropertyType = 0x0048
	ServerId     PropertyType = 0x00FB
	Restriction  PropertyType = 0x00FD
	RuleAction   PropertyType = 0x00FE
	Binary       PropertyType = 0x0102
)

// Multi-valued counterparts. MS-OXCDATA defines twelve PtypMultiple*
// types; this module keeps the complete, bit-exact set of all twelve —
// see DESIGN.md for the reasoning behind keeping the full set rather than
// a narrower commonly-cited subset.
const (
	MultipleInteger16    PropertyType = 0x1002
	MultipleInteger32    PropertyType = 0x1003
	MultipleFloating32   PropertyType = 0x1004
	MultipleFloating64   PropertyType = 0x1005
	MultipleCurrency     PropertyType = 0x1006
	MultipleFloatingTime PropertyType = 0x1007
	MultipleInteger64    PropertyType = 0x1014
	MultipleString8      PropertyType = 0x101E
	MultipleString       PropertyType = 0x101F
	MultipleTime         PropertyType = 0x1040
	MultipleGuid         PropertyType = 0x1048
	MultipleBinary       PropertyType = 0x1102
)

var typeNames = map[PropertyType]string{
	Unspecified:          "Unspecified",
	Null:                 "Null",
	Integer16:            "Integer16",
	Integer32:            "Integer32",
	Floating32:           "Floating32",
	Floating64:           "Floating64",
	Currency:             "Currency",
	FloatingTime:         "FloatingTime",
	ErrorCode:            "ErrorCode",
	Boolean:              "Boolean",
	Object:               "Object",
	Integer64:            "Integer64",
	String8:              "String8",
	String:               "String",
	Time:                 "Time",
	Guid:                 "Guid",
	ServerId:             "ServerId",
	Restriction:          "Restriction",
	RuleAction:           "RuleAction",
	Binary:               "Binary",
	MultipleInteger16:    "MultipleInteger16",
	MultipleInteger32:    "MultipleInteger32",
	MultipleFloating32:   "MultipleFloating32",
	MultipleFloating64:   "MultipleFloating64",
	MultipleCurrency:     "MultipleCurrency",
	MultipleFloatingTime: "MultipleFloatingTime",
	MultipleInteger64:    "MultipleInteger64",
	MultipleString8:      "MultipleString8",
	MultipleString:       "MultipleString",
	MultipleTime:         "MultipleTime",
	MultipleGuid:         "MultipleGuid",
	MultipleBinary:       "MultipleBinary",
}

// String renders the variant name, or a hex fallback for an unregistered
// tag (which TypeOf never actually returns, but a PropertyType can still
// be constructed directly by a caller).
func (t PropertyType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PropertyType(%#04x)", uint16(t))
}

// TypeOf decodes a 16-bit property type tag. An unrecognised tag decodes
// to Null with ok=false. ParseEntries degrades such an entry to Null
// rather than aborting the parse; it records no warning for it.
func TypeOf(tag uint16) (t PropertyType, ok bool) {
	pt := PropertyType(tag)
	_, known := typeNames[pt]
	if !known {
		return Null, false
	}
	return pt, true
}

// TagOf returns the 16-bit tag for a known PropertyType.
func TagOf(t PropertyType) uint16 {
	return uint16(t)
}

// IsMultiValued reports whether t is one of the Multiple* variants.
func (t PropertyType) IsMultiValued() bool {
	return t&0x1000 != 0
}

// singleValuedOf strips the Multiple-value bit from a multi-valued type,
// returning the PropertyType used to decode each individual element.
func (t PropertyType) singleValuedOf() PropertyType {
	if !t.IsMultiValued() {
		return t
	}
	return t &^ 0x1000
}

// IsFixedLength reports whether values of t are stored inline in the
// 8-byte entry value field, as opposed to in a dedicated sub-stream.
func (t PropertyType) IsFixedLength() bool {
	switch t {
	case Integer16, Integer32, Floating32, Floating64, Currency, FloatingTime,
		Boolean, Integer64, Time, Null, ErrorCode, Object, Unspecified:
		return true
	default:
		return false
	}
}

// PidTag is a well-known (< 0x8000) property identifier from the closed
// catalogue of PidTag* constants below. Values >= 0x8000 are
// named-property runtime indices and are not part of this catalogue; see
// NamedProperty.
type PidTag uint16

// The well-known tags a Message's top-level fields are populated from:
// message class, subject, sender identity, recipient display strings,
// submit/delivery/creation/modification timestamps, transport headers,
// attachment presence and content, and recipient addressing.
const (
	PidTagMessageClass             PidTag = 0x001A
	PidTagSubject                  PidTag = 0x0037
	PidTagClientSubmitTime         PidTag = 0x0039
	PidTagSenderName               PidTag = 0x0C1A
	PidTagSenderEmailAddress       PidTag = 0x0C1F
	PidTagDisplayBcc               PidTag = 0x0E02
	PidTagDisplayCc                PidTag = 0x0E03
	PidTagDisplayTo                PidTag = 0x0E04
	PidTagMessageDeliveryTime      PidTag = 0x0E06
	PidTagTransportMessageHeaders  PidTag = 0x007D
	PidTagHasAttachments           PidTag = 0x0E1B
	PidTagCreationTime             PidTag = 0x3007
	PidTagLastModificationTime     PidTag = 0x3008
	PidTagDisplayName              PidTag = 0x3001
	PidTagEmailAddress             PidTag = 0x3003
	PidTagRecipientType            PidTag = 0x0C15
	PidTagAttachFilename           PidTag = 0x3704
	PidTagAttachLongFilename       PidTag = 0x3707
	PidTagAttachDataBinary         PidTag = 0x3701
	PidTagAttachmentHidden         PidTag = 0x7FFE
	PidTagSmtpAddress              PidTag = 0x39FE
)

var pidTagNames = map[PidTag]string{
	PidTagMessageClass:            "PidTagMessageClass",
	PidTagSubject:                 "PidTagSubject",
	PidTagClientSubmitTime:        "PidTagClientSubmitTime",
	PidTagSenderName:              "PidTagSenderName",
	PidTagSenderEmailAddress:      "PidTagSenderEmailAddress",
	PidTagDisplayBcc:              "PidTagDisplayBcc",
	PidTagDisplayCc:               "PidTagDisplayCc",
	PidTagDisplayTo:               "PidTagDisplayTo",
	PidTagMessageDeliveryTime:     "PidTagMessageDeliveryTime",
	PidTagTransportMessageHeaders: "PidTagTransportMessageHeaders",
	PidTagHasAttachments:          "PidTagHasAttachments",
	PidTagCreationTime:            "PidTagCreationTime",
	PidTagLastModificationTime:    "PidTagLastModificationTime",
	PidTagDisplayName:             "PidTagDisplayName",
	PidTagEmailAddress:            "PidTagEmailAddress",
	PidTagRecipientType:           "PidTagRecipientType",
	PidTagAttachFilename:          "PidTagAttachFilename",
	PidTagAttachLongFilename:      "PidTagAttachLongFilename",
	PidTagAttachDataBinary:        "PidTagAttachDataBinary",
	PidTagAttachmentHidden:        "PidTagAttachmentHidden",
	PidTagSmtpAddress:             "PidTagSmtpAddress",
}

// String renders the constant's name, or a hex fallback for a tag outside
// the well-known catalogue (named-property runtime ids, in particular).
func (p PidTag) String() string {
	if name, ok := pidTagNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PidTag(%#04x)", uint16(p))
}

// IsNamedPropertyIndex reports whether pid is a runtime named-property
// slot (>= 0x8000) rather than a well-known tag.
func (p PidTag) IsNamedPropertyIndex() bool {
	return p >= 0x8000
}
